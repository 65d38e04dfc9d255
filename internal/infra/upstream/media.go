package upstream

import (
	"context"
	"mime/multipart"
)

type MediaGateway struct {
	c *Client
}

func NewMediaGateway(c *Client) *MediaGateway {
	return &MediaGateway{c: c}
}

type uploadedPicture struct {
	ID int `json:"id"`
}

// UploadPicture pushes a cover image ahead of package creation and returns
// the server-assigned picture ID. The same bytes are sent for the regular and
// large renditions, matching what the upstream expects from the console.
func (g *MediaGateway) UploadPicture(ctx context.Context, filename string, content []byte, description string) (int, error) {
	var picture uploadedPicture
	err := g.c.postForm(ctx, "/auth/picture/upload-picture", func(w *multipart.Writer) error {
		for _, field := range []string{"picture", "picture_large"} {
			part, err := w.CreateFormFile(field, filename)
			if err != nil {
				return err
			}
			if _, err := part.Write(content); err != nil {
				return err
			}
		}
		return w.WriteField("description", description)
	}, &picture)
	if err != nil {
		return 0, err
	}
	return picture.ID, nil
}
