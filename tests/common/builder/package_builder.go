//go:build unit

package builder

import (
	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/ptr"
)

type PackageBuilder struct {
	ID           int
	Title        string
	Description  string
	CoverPath    string
	SellingPrice *float64
}

func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		ID:           101,
		Title:        "Desert Escape",
		Description:  "Three nights in the dunes",
		CoverPath:    "/media/covers/101.jpg",
		SellingPrice: ptr.To(1499.0),
	}
}

func (b *PackageBuilder) WithID(id int) *PackageBuilder {
	b.ID = id
	return b
}

func (b *PackageBuilder) WithTitle(title string) *PackageBuilder {
	b.Title = title
	return b
}

func (b *PackageBuilder) WithoutTranslations() *PackageBuilder {
	b.Title = ""
	b.Description = ""
	return b
}

func (b *PackageBuilder) WithoutCover() *PackageBuilder {
	b.CoverPath = ""
	return b
}

func (b *PackageBuilder) WithoutPrice() *PackageBuilder {
	b.SellingPrice = nil
	return b
}

func (b *PackageBuilder) Build() upstream.Package {
	pkg := upstream.Package{
		ID:           b.ID,
		SellingPrice: b.SellingPrice,
	}
	if b.Title != "" || b.Description != "" {
		pkg.Translations = []upstream.Translation{
			{Locale: "en", Title: b.Title, Description: b.Description},
			{Locale: "ar", Title: "عنوان", Description: "وصف"},
		}
	}
	if b.CoverPath != "" {
		pkg.Cover = &upstream.Picture{VirtualPath: b.CoverPath}
	}
	return pkg
}
