package web

import (
	"net/http"

	"github.com/goliatone/go-agencysite/pkg/audit"
)

func (s *Server) handleAuditSchema(w http.ResponseWriter, r *http.Request) {
	if !readOnly(w, r) {
		return
	}
	s.writeJSON(w, http.StatusOK, audit.ContractDocument())
}

func (s *Server) handleAuditOptions(w http.ResponseWriter, r *http.Request) {
	if !readOnly(w, r) {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"steps":   audit.Steps(),
		"options": audit.Catalogue(),
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if !readOnly(w, r) {
		return
	}
	s.writeJSON(w, http.StatusOK, s.metrics.GetStats())
}
