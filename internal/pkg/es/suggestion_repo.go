package es

import (
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 10000

// SearchQuery mirrors the listing filters; From/Size are already clamped.
type SearchQuery struct {
	Status string
	Type   string
	Region string
	Search string
	From   int
	Size   int
}

type SuggestionRepo interface {
	SearchIDs(ctx context.Context, q SearchQuery) ([]uint64, int64, error)
	IndexSuggestion(ctx context.Context, doc *SuggestionES) error
	UpdateSuggestion(ctx context.Context, doc *SuggestionES) error
	DeleteSuggestion(ctx context.Context, id uint64) error
}

type SuggestionRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewSuggestionRepo(client *elasticsearch.TypedClient) SuggestionRepo {
	return &SuggestionRepoImpl{client: client}
}

// SearchIDs resolves the filtered page to suggestion ids plus the total
// match count. Rows are re-fetched from the store so the response never
// serves stale counters out of the index.
func (s *SuggestionRepoImpl) SearchIDs(ctx context.Context, q SearchQuery) ([]uint64, int64, error) {
	if q.From >= MaxSearchDepth {
		return []uint64{}, 0, nil
	}

	boolQuery := &types.BoolQuery{}
	if q.Search != "" {
		boolQuery.Must = append(boolQuery.Must, types.Query{
			MultiMatch: &types.MultiMatchQuery{
				Query:  q.Search,
				Fields: []string{"title^2", "content"},
			},
		})
	}
	if q.Status != "" {
		boolQuery.Filter = append(boolQuery.Filter, types.Query{
			Term: map[string]types.TermQuery{"status": {Value: q.Status}},
		})
	}
	if q.Type != "" {
		boolQuery.Filter = append(boolQuery.Filter, types.Query{
			Term: map[string]types.TermQuery{"suggestion_type": {Value: q.Type}},
		})
	}
	if q.Region != "" {
		boolQuery.Filter = append(boolQuery.Filter, types.Query{
			Bool: &types.BoolQuery{
				Should: []types.Query{
					{Prefix: map[string]types.PrefixQuery{"sigungu.keyword": {Value: q.Region}}},
					{Prefix: map[string]types.PrefixQuery{"address.keyword": {Value: q.Region}}},
				},
			},
		})
	}

	req := s.client.Search().
		Index(SuggestionIndex).
		Query(&types.Query{Bool: boolQuery}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"created_at": {Order: &sortorder.Desc},
		}}, types.SortOptions{SortOptions: map[string]types.FieldSort{
			"id": {Order: &sortorder.Desc},
		}}).
		Source_(&types.SourceFilter{Includes: []string{"id"}}).
		From(q.From).
		Size(q.Size)

	res, err := req.Do(ctx)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint64, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc SuggestionES
		if err = json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, 0, err
		}
		ids = append(ids, doc.ID)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}
	return ids, total, nil
}

func (s *SuggestionRepoImpl) IndexSuggestion(ctx context.Context, doc *SuggestionES) error {
	docID := strconv.FormatUint(doc.ID, 10)
	_, err := s.client.Index(SuggestionIndex).
		Id(docID).
		Document(doc).
		Do(ctx)
	return err
}

func (s *SuggestionRepoImpl) UpdateSuggestion(ctx context.Context, doc *SuggestionES) error {
	return s.IndexSuggestion(ctx, doc)
}

func (s *SuggestionRepoImpl) DeleteSuggestion(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)
	_, err := s.client.Delete(SuggestionIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) && e.Status == NotFoundCode {
			return nil
		}
		return err
	}
	return nil
}
