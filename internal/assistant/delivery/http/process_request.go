package http

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"agri-assistant/internal/model"
)

const maxImageBytes = 10 << 20 // 10 MiB

var (
	errMessageRequired = errors.New("message is required")
	errImageTooLarge   = errors.New("image exceeds the 10 MiB limit")
	errImageUnreadable = errors.New("could not read the uploaded image")
)

// processChatReq binds the chat request. JSON bodies carry text only;
// multipart bodies may attach an image under the "image" field.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq

	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		req.Message = c.PostForm("message")
		req.SessionID = c.PostForm("session_id")

		fh, err := c.FormFile("image")
		if err == nil && fh != nil {
			img, imgErr := readImage(fh)
			if imgErr != nil {
				return req, imgErr
			}
			req.Image = img
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}

	if req.SessionID == "" {
		req.SessionID = c.GetHeader("X-Session-ID")
	}
	return req, req.validate()
}

// processReportReq binds and validates the disease report body.
func (h *handler) processReportReq(c *gin.Context) (reportReq, error) {
	var req reportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.SessionID == "" {
		req.SessionID = c.GetHeader("X-Session-ID")
	}
	return req, req.validate()
}

// sessionID resolves the session for read endpoints: header first, then
// query parameter.
func sessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	return c.Query("session_id")
}

func readImage(fh *multipart.FileHeader) (*model.Image, error) {
	if fh.Size > maxImageBytes {
		return nil, errImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errImageUnreadable
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		return nil, errImageUnreadable
	}

	return &model.Image{
		MIMEType: fh.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}
