package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"matchmind/internal/domain/resume"
)

func (c *Client) RequestUploadURL(ctx context.Context, fileName, contentType string) (resume.Target, error) {
	var out resume.Target
	err := c.doJSON(ctx, call{
		method: http.MethodPost,
		path:   PathResumeUploadURL,
		body:   resume.UploadURLRequest{FileName: fileName, ContentType: contentType},
	}, &out)
	if err == nil && out.UploadURL == "" {
		err = fmt.Errorf("%s %s: response has no upload_url", http.MethodPost, PathResumeUploadURL)
	}
	return out, err
}

// UploadFile PUTs data straight to a presigned target. The API key is not sent.
func (c *Client) UploadFile(ctx context.Context, target resume.Target, contentType string, data []byte) error {
	start := time.Now()
	resp, err := c.uploader.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Put(target.UploadURL)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.RecordUpstream("upload", true, elapsed)
		return fmt.Errorf("upload %s: %w", target.FileKey, err)
	}
	c.log.Debug("upload response",
		zap.String("fileKey", target.FileKey),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", elapsed),
	)
	if !resp.IsSuccess() {
		c.metrics.RecordUpstream("upload", true, elapsed)
		return newError(resp.StatusCode(), resp.Body(), defaultErrorKeys...)
	}
	c.metrics.RecordUpstream("upload", false, elapsed)
	return nil
}
