package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pageViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_page_views_total",
		Help: "The total number of rendered catalog pages",
	})
	searches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_searches_total",
		Help: "The total number of pages rendered with a search term",
	})
	emptyResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_empty_results_total",
		Help: "The total number of searches that matched no product",
	})
	sorts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_sorts_total",
		Help: "The total number of sorted pages by sort key",
	}, []string{"key"})
	loadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_load_failures_total",
		Help: "The total number of failed product loads",
	})
	totalProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_products",
		Help: "The number of products currently loaded",
	})
	brokenImages = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_broken_images",
		Help: "The number of products whose thumbnail failed the last check",
	})
)
