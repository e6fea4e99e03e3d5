package service

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"institute_backend/internal/config"
	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var allowedVideoExts = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
}

// GalleryService manages the public media gallery. Video uploads are
// probed with ffprobe so the frontend can lay players out without
// loading the file first.
type GalleryService struct {
	GalleryRepo *repository.GalleryRepository
	Storage     *StorageService
	Cfg         *config.Config
}

func NewGalleryService(galleryRepo *repository.GalleryRepository, storage *StorageService, cfg *config.Config) *GalleryService {
	return &GalleryService{
		GalleryRepo: galleryRepo,
		Storage:     storage,
		Cfg:         cfg,
	}
}

type GalleryUpdateReq struct {
	Title    *string `json:"title"`
	IsActive *bool   `json:"is_active"`
}

func (s *GalleryService) ListPublic() ([]model.GalleryItem, error) {
	return s.GalleryRepo.ListActive()
}

func (s *GalleryService) ListAll() ([]model.GalleryItem, error) {
	return s.GalleryRepo.List()
}

// Upload stores the media file and creates the gallery row. The media
// type is derived from the file extension.
func (s *GalleryService) Upload(ctx context.Context, title string, file *multipart.FileHeader) (*model.GalleryItem, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))

	var mediaType model.MediaType
	switch {
	case allowedPhotoExts[ext]:
		mediaType = model.MediaImage
	case allowedVideoExts[ext]:
		mediaType = model.MediaVideo
	default:
		return nil, util.ErrInvalidFileType
	}

	if file.Size > s.Cfg.Media.MaxUploadMB*1024*1024 {
		return nil, util.ErrFileTooLarge
	}

	objectName := "gallery/" + uuid.New().String() + ext

	item := &model.GalleryItem{
		MediaType: mediaType,
		Title:     title,
		IsActive:  true,
	}

	if mediaType == model.MediaVideo {
		// ffprobe wants a file on disk, so videos go through a temp file
		// before they reach the storage provider.
		tmpPath, err := saveToTemp(file, ext)
		if err != nil {
			return nil, err
		}
		defer os.Remove(tmpPath)

		info, err := util.GetVideoInfo(tmpPath)
		if err != nil {
			zap.L().Warn("video probe failed, storing without metadata",
				zap.String("filename", file.Filename), zap.Error(err))
		} else {
			item.DurationSeconds = info.Duration
			item.Width = info.Width
			item.Height = info.Height
		}

		url, err := s.Storage.UploadFile(ctx, objectName, tmpPath, file.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}
		item.URL = url
	} else {
		src, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()

		url, err := s.Storage.Upload(ctx, objectName, src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}
		item.URL = url
	}

	if err := s.GalleryRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GalleryService) Update(id uint, req GalleryUpdateReq) (*model.GalleryItem, error) {
	item, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.GalleryRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *GalleryService) Delete(ctx context.Context, id uint) error {
	item, err := s.get(id)
	if err != nil {
		return err
	}

	if err := s.GalleryRepo.Delete(item); err != nil {
		return err
	}
	if obj := objectNameFromURL(item.URL); obj != "" {
		_ = s.Storage.Delete(ctx, obj)
	}
	return nil
}

func (s *GalleryService) get(id uint) (*model.GalleryItem, error) {
	item, err := s.GalleryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMediaNotFound
		}
		return nil, err
	}
	return item, nil
}

func saveToTemp(file *multipart.FileHeader, ext string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
