package commands

import (
	"context"
	"log/slog"

	reqdto "tripdesk/internal/handler/dto/request"
	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/queries"
)

var (
	ErrPackageNotFound     = errs.New("package not found")
	ErrPackageRejected     = errs.New("package rejected by upstream")
	ErrCoverUploadFailed   = errs.New("cover upload failed")
	ErrPackageWriteFailed  = errs.New("package write failed")
	ErrPackageDeleteFailed = errs.New("package delete failed")
)

type PackageWritePort interface {
	Create(ctx context.Context, draft upstream.PackageDraft) (*upstream.Package, error)
	UpdateTranslation(ctx context.Context, id int, locale, title, description, sellingPrice string) error
	Delete(ctx context.Context, id int) error
}

type MediaPort interface {
	UploadPicture(ctx context.Context, filename string, content []byte, description string) (int, error)
}

// CoverImage is the optional cover file received alongside the create form.
type CoverImage struct {
	Filename string
	Content  []byte
}

type PackageCommands interface {
	Create(ctx context.Context, req reqdto.CreatePackageRequest, cover *CoverImage) (*queries.PackageDetail, error)
	Update(ctx context.Context, id int, req reqdto.UpdatePackageRequest) (*queries.PackageDetail, error)
	Delete(ctx context.Context, id int) error
}

type packageCommandsImpl struct {
	gateway PackageWritePort
	media   MediaPort
	reads   queries.PackageQueries
}

func NewPackageCommands(gateway PackageWritePort, media MediaPort, reads queries.PackageQueries) PackageCommands {
	return &packageCommandsImpl{
		gateway: gateway,
		media:   media,
		reads:   reads,
	}
}

// Create uploads the cover first, then submits the package referencing the
// uploaded picture. A failed upload aborts the whole create; the package call
// is never issued, so no package ends up pointing at a missing image.
func (p *packageCommandsImpl) Create(ctx context.Context, req reqdto.CreatePackageRequest, cover *CoverImage) (*queries.PackageDetail, error) {
	coverID := 0
	if cover != nil {
		id, err := p.media.UploadPicture(ctx, cover.Filename, cover.Content, req.Title)
		if err != nil {
			return nil, errs.Mark(err, ErrCoverUploadFailed)
		}
		coverID = id
	}

	pkg, err := p.gateway.Create(ctx, req.ToDraft(coverID))
	if err != nil {
		if coverID != 0 {
			slog.Warn("package create failed after cover upload", "cover_id", coverID, "error", err.Error())
		}
		if upstream.IsKind(err, upstream.KindRejected) {
			return nil, errs.Mark(err, ErrPackageRejected)
		}
		return nil, errs.Mark(err, ErrPackageWriteFailed)
	}

	return queries.NewPackageDetail(pkg), nil
}

// Update writes the localized fields and then re-reads the package so the
// caller renders acknowledged state, never an optimistic guess.
func (p *packageCommandsImpl) Update(ctx context.Context, id int, req reqdto.UpdatePackageRequest) (*queries.PackageDetail, error) {
	err := p.gateway.UpdateTranslation(ctx, id, queries.LocaleEN, req.Title, req.Description, req.SellingPrice)
	if err != nil {
		if upstream.IsNotFound(err) {
			return nil, errs.Mark(err, ErrPackageNotFound)
		}
		if upstream.IsKind(err, upstream.KindRejected) {
			return nil, errs.Mark(err, ErrPackageRejected)
		}
		return nil, errs.Mark(err, ErrPackageWriteFailed)
	}

	detail, err := p.reads.GetDetail(ctx, id)
	if err != nil {
		if errs.Is(err, queries.ErrPackageNotFound) {
			return nil, errs.Mark(err, ErrPackageNotFound)
		}
		return nil, errs.Mark(err, ErrPackageWriteFailed)
	}
	return detail, nil
}

func (p *packageCommandsImpl) Delete(ctx context.Context, id int) error {
	if err := p.gateway.Delete(ctx, id); err != nil {
		if upstream.IsNotFound(err) {
			return errs.Mark(err, ErrPackageNotFound)
		}
		return errs.Mark(err, ErrPackageDeleteFailed)
	}
	return nil
}
