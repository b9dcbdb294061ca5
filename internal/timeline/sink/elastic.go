package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fekuna/omnipos-shift-service/internal/model"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/search"
	"github.com/fekuna/omnipos-shift-service/internal/timeline/dto"
)

const timelineMapping = `{
	"mappings": {
		"properties": {
			"id": { "type": "keyword" },
			"action": { "type": "keyword" },
			"shift_id": { "type": "keyword" },
			"actor_user_id": { "type": "keyword" },
			"description": { "type": "text" },
			"metadata": { "type": "object", "dynamic": true },
			"created_at": { "type": "date" }
		}
	}
}`

// Elastic indexes events and serves timeline search.
type Elastic struct {
	es    *search.Client
	index string
}

func NewElastic(es *search.Client, index string) *Elastic {
	return &Elastic{es: es, index: index}
}

func (e *Elastic) EnsureIndex(ctx context.Context) error {
	return e.es.CreateIndex(ctx, e.index, timelineMapping)
}

func (e *Elastic) Record(ctx context.Context, ev *model.TimelineEvent) error {
	return e.es.Index(ctx, e.index, ev.ID, ev)
}

func (e *Elastic) Search(ctx context.Context, f *dto.TimelineFilters) ([]model.TimelineEvent, int, error) {
	must := []map[string]interface{}{}
	if f.Query != "" {
		must = append(must, map[string]interface{}{
			"query_string": map[string]interface{}{
				"query":  fmt.Sprintf("*%s*", f.Query),
				"fields": []string{"description^3", "metadata.*"},
			},
		})
	}
	if f.ShiftID != "" {
		must = append(must, map[string]interface{}{"term": map[string]interface{}{"shift_id": f.ShiftID}})
	}
	if f.Action != "" {
		must = append(must, map[string]interface{}{"term": map[string]interface{}{"action": f.Action}})
	}

	q := map[string]interface{}{
		"query": map[string]interface{}{"bool": map[string]interface{}{"must": must}},
		"sort":  []map[string]interface{}{{"created_at": map[string]string{"order": "desc"}}},
	}
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		q["from"] = (page - 1) * f.PageSize
		q["size"] = f.PageSize
	}

	res, err := e.es.Search(ctx, e.index, q)
	if err != nil {
		return nil, 0, err
	}
	events := make([]model.TimelineEvent, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var ev model.TimelineEvent
		if err := json.Unmarshal(hit.Source, &ev); err != nil {
			return nil, 0, fmt.Errorf("decode timeline hit %s: %w", hit.ID, err)
		}
		events = append(events, ev)
	}
	return events, res.Hits.Total.Value, nil
}
