package routes

import (
	"context"
	"errors"
	"fmt"

	authMiddleware "go-staffhub/internal/auth/middleware"
	"go-staffhub/internal/fileshares/dto"
	"go-staffhub/internal/fileshares/models"
	"go-staffhub/internal/fileshares/services"
	"go-staffhub/pkg/permissions"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Routes exposes the file sharing surface
type Routes struct {
	service *services.Service
	gate    *authMiddleware.Gate
}

func NewRoutes(service *services.Service, gate *authMiddleware.Gate) *Routes {
	return &Routes{
		service: service,
		gate:    gate,
	}
}

// RegisterUnifiedRoutes registers all file routes with the Huma API
func (hr *Routes) RegisterUnifiedRoutes(api huma.API) {
	huma.Get(api, "/files", hr.list)
	huma.Register(api, huma.Operation{
		OperationID: "files-upload",
		Method:      "POST",
		Path:        "/files",
		Summary:     "Upload file",
		Description: "Store an uploaded file and its metadata",
		Tags:        []string{"Files"},
	}, hr.upload)
	huma.Register(api, huma.Operation{
		OperationID: "files-download",
		Method:      "GET",
		Path:        "/files/{file_id}/download",
		Summary:     "Download file",
		Description: "Stream a stored file back to the caller",
		Tags:        []string{"Files"},
	}, hr.download)
	huma.Put(api, "/files/{file_id}/shares", hr.share)
	huma.Delete(api, "/files/{file_id}", hr.delete)
}

func (hr *Routes) list(ctx context.Context, input *dto.ListFilesInput) (*dto.ListFilesOutput, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyFilesView)
	if err != nil {
		return nil, err
	}

	if input.All && !permissions.IsGranted(user.Principal, permissions.KeyFilesManage) {
		return nil, huma.Error403Forbidden("missing required permission: " + permissions.KeyFilesManage)
	}

	shares, err := hr.service.List(ctx, user.UserID, input.All)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list files", err)
	}

	out := &dto.ListFilesOutput{}
	out.Body.Files = make([]dto.FileOutput, len(shares))
	for i, s := range shares {
		out.Body.Files[i] = fileOutput(&s)
	}
	out.Body.Total = len(shares)
	return out, nil
}

func (hr *Routes) upload(ctx context.Context, input *dto.UploadFileInput) (*dto.FileOutputWrapper, error) {
	user, err := hr.gate.RequirePermission(ctx, input.Authorization, input.Cookie, permissions.KeyFilesUpload)
	if err != nil {
		return nil, err
	}

	share, err := hr.service.Save(ctx, user.UserID, input.Filename, input.ContentType, input.RawBody)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyFile), errors.Is(err, services.ErrFileTooLarge):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			return nil, huma.Error500InternalServerError("Failed to store file", err)
		}
	}

	return &dto.FileOutputWrapper{Body: fileOutput(share)}, nil
}

func (hr *Routes) download(ctx context.Context, input *dto.DownloadFileInput) (*dto.DownloadFileOutput, error) {
	user, err := hr.gate.RequireAuth(ctx, input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.FileID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid file id")
	}

	share, data, err := hr.service.Read(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			return nil, huma.Error404NotFound("file not found")
		}
		return nil, huma.Error500InternalServerError("Failed to read file", err)
	}

	if !share.AccessibleBy(user.UserID) && !permissions.IsGranted(user.Principal, permissions.KeyFilesManage) {
		return nil, huma.Error403Forbidden("file is not shared with you")
	}

	return &dto.DownloadFileOutput{
		ContentType:        share.ContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", share.Filename),
		Body:               data,
	}, nil
}

func (hr *Routes) share(ctx context.Context, input *dto.ShareFileInput) (*dto.FileOutputWrapper, error) {
	user, err := hr.gate.RequireAuth(ctx, input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.FileID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid file id")
	}

	share, err := hr.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			return nil, huma.Error404NotFound("file not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load file", err)
	}

	if share.OwnerID != user.UserID && !permissions.IsGranted(user.Principal, permissions.KeyFilesManage) {
		return nil, huma.Error403Forbidden("only the owner may reshare this file")
	}

	userIDs, err := parseObjectIDs(input.Body.UserIDs)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid user id in share list")
	}

	updated, err := hr.service.Share(ctx, id, userIDs)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			return nil, huma.Error404NotFound("file not found")
		}
		return nil, huma.Error500InternalServerError("Failed to update share list", err)
	}

	return &dto.FileOutputWrapper{Body: fileOutput(updated)}, nil
}

func (hr *Routes) delete(ctx context.Context, input *dto.DeleteFileInput) (*dto.MessageOutput, error) {
	user, err := hr.gate.RequireAuth(ctx, input.Authorization, input.Cookie)
	if err != nil {
		return nil, err
	}

	id, err := primitive.ObjectIDFromHex(input.FileID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid file id")
	}

	share, err := hr.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			return nil, huma.Error404NotFound("file not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load file", err)
	}

	if share.OwnerID != user.UserID && !permissions.IsGranted(user.Principal, permissions.KeyFilesManage) {
		return nil, huma.Error403Forbidden("only the owner may delete this file")
	}

	if err := hr.service.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			return nil, huma.Error404NotFound("file not found")
		}
		return nil, huma.Error500InternalServerError("Failed to delete file", err)
	}

	out := &dto.MessageOutput{}
	out.Body.Message = "File deleted"
	return out, nil
}

func fileOutput(f *models.FileShare) dto.FileOutput {
	shared := make([]string, len(f.SharedWith))
	for i, id := range f.SharedWith {
		shared[i] = id.Hex()
	}
	return dto.FileOutput{
		ID:          f.ID.Hex(),
		Filename:    f.Filename,
		Size:        f.Size,
		ContentType: f.ContentType,
		OwnerID:     f.OwnerID.Hex(),
		SharedWith:  shared,
		CreatedAt:   f.CreatedAt,
	}
}

func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
