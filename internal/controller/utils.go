package controller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type apiError struct {
	Errors []string `json:"errors"`
}

type apiResponse[T any] struct {
	Data T `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parsePagePageSize(r *http.Request) (page, pageSize int) {
	q := r.URL.Query()
	if s := q.Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			page = v
		}
	}
	if s := q.Get("pageSize"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			pageSize = v
		}
	}
	return
}

// parseTimeParam accepts RFC3339 or a bare date / "YYYY-MM-DD HH:MM".
func parseTimeParam(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
