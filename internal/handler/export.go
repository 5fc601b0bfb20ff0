package handler

import (
	"salesledger/internal/apperr"
	"salesledger/internal/export"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// writeWorkbook builds the workbook first so failures can still produce a
// JSON error, then streams it as an attachment.
func writeWorkbook(c *gin.Context, opts export.Options) {
	f, err := export.Workbook(opts)
	if err != nil {
		writeError(c, apperr.Store("failed to build export", err))
		return
	}
	defer f.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="`+opts.Attachment()+`"`)
	if err := f.Write(c.Writer); err != nil {
		// Headers are already out; nothing more to report to the client.
		_ = c.Error(err)
	}
}
