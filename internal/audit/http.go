// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package audit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taibuivan/inkdex/internal/pipeline"
	requestutil "github.com/taibuivan/inkdex/internal/platform/request"
	"github.com/taibuivan/inkdex/internal/platform/respond"
	"github.com/taibuivan/inkdex/internal/platform/sec"
	"github.com/taibuivan/inkdex/pkg/pagination"
)

// GetLogsRequest reads the audit trail. Any valid token may read it; no
// specific permission bit is required.
type GetLogsRequest struct {
	Token uuid.UUID
}

func (request *GetLogsRequest) Validate() error                     { return nil }
func (request *GetLogsRequest) TokenID() uuid.UUID                  { return request.Token }
func (request *GetLogsRequest) RequiredPermissions() sec.Permission { return sec.PermissionNone }

type Handler struct {
	logger *Logger
	gate   *pipeline.Gate
}

func NewHandler(logger *Logger, gate *pipeline.Gate) *Handler {
	return &Handler{logger: logger, gate: gate}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.getLogs)
}

func (handler *Handler) getLogs(writer http.ResponseWriter, request *http.Request) {
	logsRequest := &GetLogsRequest{
		Token: requestutil.TokenQuery(request, "token"),
	}

	if _, err := handler.gate.Check(request.Context(), logsRequest); err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	entries, meta, err := handler.logger.GetLogs(request.Context(), paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, meta)
}
