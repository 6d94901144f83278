package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"netsum/internal/api/dto"
	"netsum/internal/config"
	"netsum/internal/geolite"
	"netsum/internal/ipv4"
	"netsum/internal/routeset"
)

const defaultMaxBodyBytes = 1 << 20

func summarizeRoutes(w http.ResponseWriter, r *http.Request) {
	maxBytes := config.GetConfig().Server.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBodyBytes
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes))
	if err != nil {
		writeError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	text := string(body)
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var request dto.SummaryRequest
		if err := json.Unmarshal(body, &request); err != nil {
			writeError(w, "Invalid request", http.StatusBadRequest)
			return
		}
		text = strings.Join(request.Routes, "\n")
	}

	routes, err := routeset.ParseText(text)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := ipv4.Summarize(routes)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	response := dto.SummaryResponse{
		Routes:  make([]dto.RouteInfo, 0, len(routes)),
		Summary: routeInfo(summary),
	}
	for _, route := range routes {
		response.Routes = append(response.Routes, routeInfo(route))
	}

	log.Debug("Summarized route set", "routes", len(routes), "summary", summary.String())
	writeJSON(w, http.StatusOK, response)
}

func routeInfo(route ipv4.Route) dto.RouteInfo {
	return dto.RouteInfo{
		Route:        route.String(),
		Address:      route.Addr.String(),
		PrefixLength: route.Mask.PrefixLength(),
		Country:      geolite.Country(route.Addr),
	}
}
