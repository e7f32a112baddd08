package routes

import (
	"io"
	"net/http"

	"github.com/rakesh-s-omen/SmartIntern/app/service"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actorFromContext rebuilds the acting identity from the values
// AuthMiddleware stored in the request context.
func actorFromContext(ctx *gin.Context) service.Actor {
	actor := service.Actor{
		Role:       ctx.GetString("role"),
		Department: ctx.GetString("department"),
	}
	if v, ok := ctx.Get("userID"); ok {
		if id, ok := v.(uuid.UUID); ok {
			actor.ID = id
		}
	}
	return actor
}

// formFile reads an uploaded multipart file into memory. Returns nil when
// the field is absent so callers can decide whether it was mandatory.
func formFile(ctx *gin.Context, field string) (*service.FileUpload, error) {
	header, err := ctx.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &service.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// parseUUIDParam parses a :param path segment as a UUID, writing the 400
// response itself on failure.
func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			utils.BuildResponseFailed("Invalid id in URL", err.Error(), nil))
		return uuid.Nil, false
	}
	return id, true
}
