package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"todo-tracker/internal/naturallanguage"
)

var (
	naturalLanguageCreations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "todo",
		Name:      "natural_language_creations_total",
		Help:      "Todos created from natural-language text.",
	})

	extractedFields = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "todo",
		Name:      "natural_language_extracted_fields_total",
		Help:      "Fields recognised in natural-language text, by field.",
	}, []string{"field"})
)

func observeExtraction(res naturallanguage.Result) {
	naturalLanguageCreations.Inc()
	if res.DueDate != nil {
		extractedFields.WithLabelValues("due_date").Inc()
	}
	if res.Priority != nil {
		extractedFields.WithLabelValues("priority").Inc()
	}
	if res.Labels != nil {
		extractedFields.WithLabelValues("labels").Inc()
	}
}
