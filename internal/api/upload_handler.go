package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dutchcoders/go-clamd"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"designhub/internal/api/middleware"
	"designhub/internal/storage"
)

const (
	maxUploadBytes     = 5 << 20
	uploadURLLifetime  = 7 * 24 * time.Hour
	uploadFormField    = "file"
	uploadQueryKeyName = "key"
)

var errMaliciousFile = errors.New("malicious file detected")

// ObjectStorage 由 *storage.Client 实现。
type ObjectStorage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (*minio.UploadInfo, error)
	StatObject(ctx context.Context, objectKey string) (storage.ObjectMeta, error)
	GeneratePresignedURL(ctx context.Context, objectKey string, duration time.Duration) (string, error)
}

// VirusScanner 在上传前检查文件内容。
type VirusScanner interface {
	Scan(ctx context.Context, r io.Reader) error
}

// ClamdScanner 通过 clamd 的 INSTREAM 扫描文件。
type ClamdScanner struct {
	Addr string
}

// Scan 发现任何非 OK 结果时返回 errMaliciousFile。
func (s ClamdScanner) Scan(ctx context.Context, r io.Reader) error {
	abort := make(chan bool)
	defer close(abort)

	results, err := clamd.NewClamd(s.Addr).ScanStream(r, abort)
	if err != nil {
		return fmt.Errorf("scan stream: %w", err)
	}

	var verdict error
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case result, ok := <-results:
			if !ok {
				return verdict
			}
			if result.Status != clamd.RES_OK && verdict == nil {
				verdict = errMaliciousFile
			}
		}
	}
}

// UploadHandler 负责订单素材（logo、参考图）的上传与访问。
type UploadHandler struct {
	storage ObjectStorage
	scanner VirusScanner
}

// NewUploadHandler 构造 UploadHandler；scanner 为 nil 时跳过病毒扫描。
func NewUploadHandler(storage ObjectStorage, scanner VirusScanner) *UploadHandler {
	return &UploadHandler{storage: storage, scanner: scanner}
}

// UploadAsset 接收 multipart 图片，校验类型并扫描后写入对象存储。
// 返回的 url 可直接填入订单的 logoUrl 或 referenceImages。
func (h *UploadHandler) UploadAsset(c *gin.Context) {
	logger := middleware.LoggerFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes+1<<20)

	file, err := c.FormFile(uploadFormField)
	if err != nil {
		BadRequest(c, "missing file")
		return
	}
	if file.Size <= 0 || file.Size > maxUploadBytes {
		BadRequest(c, "file must be between 1 byte and 5 MB")
		return
	}

	reader, err := file.Open()
	if err != nil {
		Internal(c, "open upload", err)
		return
	}
	detected, err := mimetype.DetectReader(reader)
	reader.Close()
	if err != nil {
		Internal(c, "detect upload type", err)
		return
	}
	ext, ok := uploadExtensions[detected.String()]
	if !ok {
		BadRequest(c, "only png, jpeg and webp images are accepted")
		return
	}

	if h.scanner != nil {
		reader, err = file.Open()
		if err != nil {
			Internal(c, "open upload", err)
			return
		}
		err = h.scanner.Scan(c.Request.Context(), reader)
		reader.Close()
		if errors.Is(err, errMaliciousFile) {
			logger.Warn("rejected infected upload", slog.String("filename", file.Filename))
			BadRequest(c, errMaliciousFile.Error())
			return
		}
		if err != nil {
			Internal(c, "scan upload", err)
			return
		}
	}

	reader, err = file.Open()
	if err != nil {
		Internal(c, "open upload", err)
		return
	}
	defer reader.Close()

	objectKey := uploadKeyPrefix + uuid.NewString() + ext
	if _, err := h.storage.UploadFile(c.Request.Context(), objectKey, reader, file.Size, detected.String()); err != nil {
		Internal(c, "upload asset", err)
		return
	}

	url, err := h.storage.GeneratePresignedURL(c.Request.Context(), objectKey, uploadURLLifetime)
	if err != nil {
		Internal(c, "sign asset url", err)
		return
	}

	logger.Info("asset uploaded", slog.String("object_key", objectKey), slog.Int64("size", file.Size))
	c.JSON(http.StatusCreated, gin.H{"objectKey": objectKey, "url": url})
}

// GetUploadURL 为已上传的素材重新签发下载链接。
func (h *UploadHandler) GetUploadURL(c *gin.Context) {
	objectKey := c.Query(uploadQueryKeyName)
	if !isValidUploadObjectKey(objectKey) {
		BadRequest(c, "invalid key")
		return
	}

	if _, err := h.storage.StatObject(c.Request.Context(), objectKey); err != nil {
		if storage.IsNoSuchKey(err) {
			NotFound(c, "Upload not found")
			return
		}
		Internal(c, "stat asset", err)
		return
	}

	url, err := h.storage.GeneratePresignedURL(c.Request.Context(), objectKey, uploadURLLifetime)
	if err != nil {
		Internal(c, "sign asset url", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
