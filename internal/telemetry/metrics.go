package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CellsConverted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tabprep_cells_converted_total",
		Help: "Cells successfully converted to numeric timestamps.",
	}, []string{"column"})

	ParseFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tabprep_parse_failures_total",
		Help: "Cells that failed datetime parsing and degraded to missing.",
	}, []string{"column"})

	RenderFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tabprep_render_failures_total",
		Help: "Cells that could not be rendered back and got the sentinel.",
	}, []string{"column"})

	DeadColumns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tabprep_dead_columns_total",
		Help: "Datetime columns dropped at fit time for lacking a format.",
	})
)

func init() {
	prometheus.MustRegister(CellsConverted, ParseFailures, RenderFailures, DeadColumns)
}

func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}
