package web

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/arpitthool/image-transform-web/internal/adapters/local"
	"github.com/arpitthool/image-transform-web/internal/adapters/storage"
	"github.com/arpitthool/image-transform-web/internal/core/domain"
	"github.com/arpitthool/image-transform-web/internal/core/domain/controller"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const msgFileTooLarge = "File too large"

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Error":   c.Query("error"),
		"Message": c.Query("message"),
	})
}

func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			redirectWithError(c, "/", msgFileTooLarge)
			return
		}
		redirectWithError(c, "/", domain.MsgNoFileSelected)
		return
	}

	if fileHeader.Filename == "" {
		redirectWithError(c, "/", domain.MsgNoFileSelected)
		return
	}

	if !domain.AllowedFile(fileHeader.Filename) {
		redirectWithError(c, "/", domain.MsgUploadInvalidType)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to open upload")
		redirectWithError(c, "/", domain.MsgInternalError)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to read upload")
		redirectWithError(c, "/", msgFileTooLarge)
		return
	}

	name, err := s.store.Save(fileHeader.Filename, data)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to store upload")
		redirectWithError(c, "/", domain.MsgInternalError)
		return
	}

	log.Info().Str("filename", name).Int("size", len(data)).Msg("image uploaded")

	c.Redirect(http.StatusSeeOther,
		"/view/"+url.PathEscape(name)+"?message="+url.QueryEscape(domain.MsgUploadSuccess))
}

func (s *Server) handleView(c *gin.Context) {
	name, err := storage.SanitizeFilename(c.Param("filename"))
	if err != nil {
		redirectWithError(c, "/", domain.MsgInvalidFileType)
		return
	}

	c.HTML(http.StatusOK, "view.html", gin.H{
		"Filename": name,
		"Message":  c.Query("message"),
	})
}

// handleConvert runs the conversion for browsers without scripting: a
// throwaway page double is bound, clicked once and rendered back.
func (s *Server) handleConvert(c *gin.Context) {
	filename, err := storage.SanitizeFilename(c.Param("filename"))
	if err != nil {
		redirectWithError(c, "/", domain.MsgInvalidFileType)
		return
	}

	page := newResultPage()

	_, err = controller.NewGrayscaleController(page, local.NewStoreSource(s.store),
		local.NewServiceTransformer(s.service), filename)
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("failed to bind conversion page")
		c.String(http.StatusInternalServerError, domain.MsgInternalError)
		return
	}

	page.click(c.Request.Context())

	c.HTML(http.StatusOK, "view.html", gin.H{
		"Filename": filename,
		"Result":   page.result(),
	})
}

func (s *Server) handleUploadedFile(c *gin.Context) {
	filename := c.Param("filename")

	if !s.store.Exists(filename) {
		c.String(http.StatusNotFound, "Image not found")
		return
	}

	path, err := s.store.Path(filename)
	if err != nil {
		c.String(http.StatusNotFound, "Image not found")
		return
	}

	c.File(path)
}

func (s *Server) handleTransform(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.String(http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		c.String(http.StatusBadRequest, domain.MsgNoFilePart)
		return
	}

	if fileHeader.Filename == "" {
		c.String(http.StatusBadRequest, domain.MsgNoFileSelected)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to open upload")
		c.String(http.StatusInternalServerError, domain.MsgInternalError)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.String(http.StatusRequestEntityTooLarge, msgFileTooLarge)
		return
	}

	converted, err := s.service.Convert(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		var statusErr *domain.StatusError
		if errors.As(err, &statusErr) {
			c.String(statusErr.Status, statusErr.Message)
			return
		}

		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("conversion failed")
		c.String(http.StatusInternalServerError, domain.MsgInternalError)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+domain.ProcessedImageName+`"`)
	c.Data(http.StatusOK, "image/png", converted)
}

func redirectWithError(c *gin.Context, target, message string) {
	c.Redirect(http.StatusSeeOther, target+"?error="+url.QueryEscape(message))
}
