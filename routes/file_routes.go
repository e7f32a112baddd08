package routes

import (
	"fmt"
	"net/http"

	"github.com/rakesh-s-omen/SmartIntern/app/service"
	"github.com/rakesh-s-omen/SmartIntern/middleware"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/gin-gonic/gin"
)

// FileHandler serves stored attachments.
type FileHandler struct {
	fileService service.FileService
}

func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

func (h *FileHandler) SetupFileRoutes(r *gin.Engine) {
	g := r.Group("/api/v1/files")
	g.Use(middleware.AuthMiddleware())
	{
		g.GET("/:id", h.Serve)
	}
}

func (h *FileHandler) Serve(ctx *gin.Context) {
	file, err := h.fileService.Serve(ctx.Request.Context(), actorFromContext(ctx), ctx.Param("id"))
	if err != nil {
		ctx.JSON(utils.ErrorResponse(err))
		return
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`inline; filename=%q`, file.FileName))
	ctx.Data(http.StatusOK, contentType, file.Data)
}
