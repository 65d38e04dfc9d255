package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	reqdto "tripdesk/internal/handler/dto/request"
	"tripdesk/internal/handler/httperr"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/commands"
	"tripdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const maxCoverBytes = 10 << 20

type PackageHandler struct {
	packageQueries  queries.PackageQueries
	formQueries     queries.FormQueries
	packageCommands commands.PackageCommands
}

func NewPackageHandler(
	packageQueries queries.PackageQueries,
	formQueries queries.FormQueries,
	packageCommands commands.PackageCommands,
) *PackageHandler {
	return &PackageHandler{
		packageQueries:  packageQueries,
		formQueries:     formQueries,
		packageCommands: packageCommands,
	}
}

// @Summary List packages
// @Description Incremental card list; pages=N returns pages 1..N merged
// @Tags packages
// @Produce json
// @Param pages query int false "Number of pages to merge (default 1)"
// @Success 200 {object} queries.PackageList
// @Failure 502 {object} httperr.Response
// @Router /package [get]
func (h *PackageHandler) List(c *gin.Context) {
	result, err := h.packageQueries.List(c.Request.Context(), pagesParam(c))
	if err != nil {
		abortGatewayError(c, err, "Failed to load packages")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Package detail
// @Tags packages
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} queries.PackageDetail
// @Failure 404 {object} httperr.Response
// @Router /package/{id} [get]
func (h *PackageHandler) GetDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid package id", nil)
		return
	}

	detail, err := h.packageQueries.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrPackageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
			return
		}
		abortGatewayError(c, err, "Failed to load package")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary Edit package
// @Description Update localized title, description and selling price
// @Tags packages
// @Accept json
// @Produce json
// @Param id path int true "Package ID"
// @Param request body reqdto.UpdatePackageRequest true "Edit request"
// @Success 200 {object} queries.PackageDetail
// @Failure 404 {object} httperr.Response
// @Router /package/{id} [post]
func (h *PackageHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid package id", nil)
		return
	}

	var req reqdto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	detail, err := h.packageCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		if errs.Is(err, commands.ErrPackageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
			return
		}
		abortGatewayError(c, err, "Failed to update package")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary Delete package
// @Description Requires ?confirm=true; nothing is removed without it
// @Tags packages
// @Param id path int true "Package ID"
// @Param confirm query bool true "Explicit confirmation"
// @Success 303 "Redirect to package list"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /package/{id} [delete]
func (h *PackageHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid package id", nil)
		return
	}

	if c.Query("confirm") != "true" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing confirmation"), "Deletion requires confirm=true", nil)
		return
	}

	if err := h.packageCommands.Delete(c.Request.Context(), id); err != nil {
		if errs.Is(err, commands.ErrPackageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
			return
		}
		abortGatewayError(c, err, "Failed to delete package")
		return
	}
	c.Redirect(http.StatusSeeOther, "/package")
}

// @Summary Create package
// @Description Multipart submission: `data` JSON part plus optional `cover` file
// @Tags packages
// @Accept multipart/form-data
// @Produce json
// @Param data formData string true "Package form as JSON"
// @Param cover formData file false "Cover image"
// @Success 201 {object} queries.PackageDetail
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /package [post]
func (h *PackageHandler) Create(c *gin.Context) {
	data := c.PostForm("data")
	if data == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing data part"), "Missing form data", nil)
		return
	}

	var req reqdto.CreatePackageRequest
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid form data", nil)
		return
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid form data", nil)
		return
	}

	cover, err := readCover(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cover image", nil)
		return
	}

	detail, err := h.packageCommands.Create(c.Request.Context(), req, cover)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrCoverUploadFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Cover upload failed; package was not created", nil)
		case errs.Is(err, commands.ErrPackageRejected):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Package rejected", nil)
		default:
			abortGatewayError(c, err, "Failed to create package")
		}
		return
	}

	c.Header("Location", "/package")
	c.JSON(http.StatusCreated, detail)
}

// @Summary Package form reference data
// @Description Countries, cities, categories and agencies for the create form
// @Tags packages
// @Produce json
// @Success 200 {object} queries.PackageFormData
// @Failure 502 {object} httperr.Response
// @Router /package/new [get]
func (h *PackageHandler) FormData(c *gin.Context) {
	form, err := h.formQueries.PackageFormData(c.Request.Context())
	if err != nil {
		abortGatewayError(c, err, "Failed to load form data")
		return
	}
	c.JSON(http.StatusOK, form)
}

func pagesParam(c *gin.Context) int {
	pages, err := strconv.Atoi(c.DefaultQuery("pages", "1"))
	if err != nil || pages < 1 {
		return 1
	}
	return pages
}

func readCover(c *gin.Context) (*commands.CoverImage, error) {
	header, err := c.FormFile("cover")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if header.Size > maxCoverBytes {
		return nil, errs.New("cover image too large")
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &commands.CoverImage{Filename: header.Filename, Content: content}, nil
}
