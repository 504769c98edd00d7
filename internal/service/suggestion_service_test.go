package service

import (
	"PedGuard/internal/api/dto"
	"PedGuard/internal/model"
	"PedGuard/internal/pkg/es"
	pkgredis "PedGuard/internal/pkg/redis"
	"PedGuard/internal/repository"
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestMain points the shared redis client at a closed port. Every cache
// path in the services tolerates redis being down, so the tests exercise
// the database fallback branches.
func TestMain(m *testing.M) {
	pkgredis.Rdb = goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	os.Exit(m.Run())
}

type fakeSuggestionRepo struct {
	byID      map[uint64]*model.Suggestion
	nextID    uint64
	rows      []*model.Suggestion
	total     int64
	searchErr error
	lastQuery repository.SuggestionQuery
	counts    []repository.StatusCount
}

func newFakeSuggestionRepo() *fakeSuggestionRepo {
	return &fakeSuggestionRepo{byID: make(map[uint64]*model.Suggestion), nextID: 1}
}

func (f *fakeSuggestionRepo) add(s *model.Suggestion) *model.Suggestion {
	if s.ID == 0 {
		s.ID = f.nextID
		f.nextID++
	}
	f.byID[s.ID] = s
	return s
}

func (f *fakeSuggestionRepo) Create(_ context.Context, s *model.Suggestion) error {
	f.add(s)
	return nil
}

func (f *fakeSuggestionRepo) GetByID(_ context.Context, id uint64) (*model.Suggestion, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeSuggestionRepo) GetByIDs(_ context.Context, ids []uint64) ([]*model.Suggestion, error) {
	var out []*model.Suggestion
	for _, s := range f.byID {
		for _, id := range ids {
			if s.ID == id {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (f *fakeSuggestionRepo) Search(_ context.Context, q repository.SuggestionQuery) ([]*model.Suggestion, int64, error) {
	f.lastQuery = q
	if f.searchErr != nil {
		return nil, 0, f.searchErr
	}
	return f.rows, f.total, nil
}

func (f *fakeSuggestionRepo) UpdateStatus(_ context.Context, id uint64, status model.SuggestionStatus, adminResponse string) error {
	s, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Status = status
	s.AdminResponse = adminResponse
	return nil
}

func (f *fakeSuggestionRepo) UpdateCounts(_ context.Context, id uint64, likes, comments int64, priorityScore int) error {
	s, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.LikeCount = int(likes)
	s.CommentCount = int(comments)
	s.PriorityScore = priorityScore
	return nil
}

func (f *fakeSuggestionRepo) CountByStatus(_ context.Context) ([]repository.StatusCount, error) {
	return f.counts, nil
}

func (f *fakeSuggestionRepo) CountOpen(_ context.Context) (int64, error) {
	return 0, nil
}

type fakeSearchRepo struct {
	ids       []uint64
	total     int64
	err       error
	indexed   int
	lastQuery es.SearchQuery
}

func (f *fakeSearchRepo) SearchIDs(_ context.Context, q es.SearchQuery) ([]uint64, int64, error) {
	f.lastQuery = q
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.ids, f.total, nil
}

func (f *fakeSearchRepo) IndexSuggestion(_ context.Context, _ *es.SuggestionES) error {
	f.indexed++
	return nil
}

func (f *fakeSearchRepo) UpdateSuggestion(_ context.Context, _ *es.SuggestionES) error {
	return nil
}

func (f *fakeSearchRepo) DeleteSuggestion(_ context.Context, _ uint64) error {
	return nil
}

func TestPriorityScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		likes    int64
		comments int64
		views    int64
		want     int
	}{
		{name: "all zero", want: 0},
		{name: "likes weigh three", likes: 5, want: 15},
		{name: "comments weigh two", comments: 7, want: 14},
		{name: "views weigh a tenth", views: 100, want: 10},
		{name: "view remainder truncates", views: 9, want: 0},
		{name: "combined", likes: 10, comments: 4, views: 55, want: 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PriorityScore(tt.likes, tt.comments, tt.views))
		})
	}
}

func TestPriorityScorePanicsOnNegativeCounter(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { PriorityScore(-1, 0, 0) })
	assert.Panics(t, func() { PriorityScore(0, -1, 0) })
	assert.Panics(t, func() { PriorityScore(0, 0, -1) })
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	allowed := []struct{ from, to model.SuggestionStatus }{
		{model.StatusPending, model.StatusReviewing},
		{model.StatusPending, model.StatusApproved},
		{model.StatusPending, model.StatusRejected},
		{model.StatusReviewing, model.StatusApproved},
		{model.StatusReviewing, model.StatusRejected},
		{model.StatusApproved, model.StatusCompleted},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	denied := []struct{ from, to model.SuggestionStatus }{
		{model.StatusReviewing, model.StatusPending},
		{model.StatusApproved, model.StatusRejected},
		{model.StatusRejected, model.StatusPending},
		{model.StatusRejected, model.StatusCompleted},
		{model.StatusCompleted, model.StatusApproved},
		{model.StatusPending, model.StatusPending},
		{model.StatusPending, model.StatusCompleted},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s should be denied", tr.from, tr.to)
	}
}

func TestFindClampsPaging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantLimit  int
		wantOffset int
		wantPage   int
	}{
		{name: "defaults", page: 0, pageSize: 0, wantLimit: 20, wantOffset: 0, wantPage: 1},
		{name: "negative page clamps to one", page: -3, pageSize: 10, wantLimit: 10, wantOffset: 0, wantPage: 1},
		{name: "oversized page size capped", page: 1, pageSize: 500, wantLimit: 50, wantOffset: 0, wantPage: 1},
		{name: "offset follows page", page: 3, pageSize: 10, wantLimit: 10, wantOffset: 20, wantPage: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := newFakeSuggestionRepo()
			svc := NewSuggestionService(repo, newFakeActionRepo(), nil, nil)

			page, err := svc.Find(context.Background(), &dto.SuggestionListQuery{Page: tt.page, PageSize: tt.pageSize})
			require.NoError(t, err)

			assert.Equal(t, tt.wantLimit, repo.lastQuery.Limit)
			assert.Equal(t, tt.wantOffset, repo.lastQuery.Offset)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantLimit, page.PageSize)
			assert.NotNil(t, page.Items)
			assert.Empty(t, page.Items)
		})
	}
}

func TestFindRejectsUnknownEnums(t *testing.T) {
	t.Parallel()

	svc := NewSuggestionService(newFakeSuggestionRepo(), newFakeActionRepo(), nil, nil)

	_, err := svc.Find(context.Background(), &dto.SuggestionListQuery{Status: "SHIPPED"})
	assert.ErrorIs(t, err, ErrParamInvalid)

	_, err = svc.Find(context.Background(), &dto.SuggestionListQuery{Type: "BRIDGE"})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestFindPageEnvelope(t *testing.T) {
	t.Parallel()

	repo := newFakeSuggestionRepo()
	repo.rows = []*model.Suggestion{
		repo.add(&model.Suggestion{Title: "a", SuggestionType: model.TypeSignalInstall, Status: model.StatusPending}),
		repo.add(&model.Suggestion{Title: "b", SuggestionType: model.TypeSignalInstall, Status: model.StatusPending}),
	}
	repo.total = 101
	svc := NewSuggestionService(repo, newFakeActionRepo(), nil, nil)

	page, err := svc.Find(context.Background(), &dto.SuggestionListQuery{Page: 1, PageSize: 50})
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(101), page.Total)
	assert.Equal(t, int64(3), page.TotalPages)
}

func TestFindUsesSearchIndexOrdering(t *testing.T) {
	t.Parallel()

	repo := newFakeSuggestionRepo()
	repo.add(&model.Suggestion{ID: 1, Title: "first", SuggestionType: model.TypeSignalInstall, Status: model.StatusPending})
	repo.add(&model.Suggestion{ID: 3, Title: "third", SuggestionType: model.TypeSignalInstall, Status: model.StatusPending})
	search := &fakeSearchRepo{ids: []uint64{3, 1}, total: 2}
	svc := NewSuggestionService(repo, newFakeActionRepo(), search, nil)

	page, err := svc.Find(context.Background(), &dto.SuggestionListQuery{Search: "crossing"})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, uint64(3), page.Items[0].ID)
	assert.Equal(t, uint64(1), page.Items[1].ID)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, "crossing", search.lastQuery.Search)
}

func TestFindFallsBackWhenSearchIndexFails(t *testing.T) {
	t.Parallel()

	repo := newFakeSuggestionRepo()
	repo.rows = []*model.Suggestion{
		repo.add(&model.Suggestion{Title: "from store", SuggestionType: model.TypeSignalInstall, Status: model.StatusPending}),
	}
	repo.total = 1
	search := &fakeSearchRepo{err: assert.AnError}
	svc := NewSuggestionService(repo, newFakeActionRepo(), search, nil)

	page, err := svc.Find(context.Background(), &dto.SuggestionListQuery{Search: "crossing"})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "from store", page.Items[0].Title)
	assert.Equal(t, "crossing", repo.lastQuery.Search)
}

func TestFindWithoutSearchIndexUsesStoreSearch(t *testing.T) {
	t.Parallel()

	repo := newFakeSuggestionRepo()
	svc := NewSuggestionService(repo, newFakeActionRepo(), nil, nil)

	_, err := svc.Find(context.Background(), &dto.SuggestionListQuery{Search: "crossing"})
	require.NoError(t, err)
	assert.Equal(t, "crossing", repo.lastQuery.Search)
}

func TestGetDetail(t *testing.T) {
	t.Parallel()

	repo := newFakeSuggestionRepo()
	repo.add(&model.Suggestion{
		ID:             7,
		UserID:         42,
		Title:          "dark crossing",
		Content:        "no lighting at night",
		SuggestionType: model.TypeSignalInstall,
		Status:         model.StatusPending,
		LikeCount:      4,
		CommentCount:   2,
		ViewCount:      30,
		User:           model.User{Name: "Kim"},
	})
	actions := newFakeActionRepo()
	actions.setLike(7, 42)
	svc := NewSuggestionService(repo, actions, nil, nil)

	detail, err := svc.GetDetail(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.Equal(t, "dark crossing", detail.Title)
	assert.Equal(t, "no lighting at night", detail.Content)
	assert.True(t, detail.IsLiked)
	assert.Equal(t, 4*3+2*2+30/10, detail.PriorityScore)
	assert.Equal(t, "Kim", detail.UserName)

	anon, err := svc.GetDetail(context.Background(), 0, 7)
	require.NoError(t, err)
	assert.False(t, anon.IsLiked)

	_, err = svc.GetDetail(context.Background(), 0, 999)
	assert.ErrorIs(t, err, ErrSuggestionNotFound)
}

func TestCreateRejectsUnknownType(t *testing.T) {
	t.Parallel()

	svc := NewSuggestionService(newFakeSuggestionRepo(), newFakeActionRepo(), nil, nil)
	_, err := svc.Create(context.Background(), 1, &dto.SuggestionCreateDTO{
		Title:          "t",
		Content:        "c",
		SuggestionType: "BRIDGE",
	})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestCreateStartsPending(t *testing.T) {
	t.Parallel()

	repo := newFakeSuggestionRepo()
	svc := NewSuggestionService(repo, newFakeActionRepo(), nil, nil)

	id, err := svc.Create(context.Background(), 9, &dto.SuggestionCreateDTO{
		Title:          "faded crosswalk",
		Content:        "repaint needed",
		SuggestionType: string(model.TypeCrosswalkInstall),
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	stored := repo.byID[id]
	assert.Equal(t, model.StatusPending, stored.Status)
	assert.Equal(t, uint64(9), stored.UserID)
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	repo := newFakeSuggestionRepo()
	repo.add(&model.Suggestion{ID: 1, Status: model.StatusPending, SuggestionType: model.TypeSignalInstall})
	repo.add(&model.Suggestion{ID: 2, Status: model.StatusCompleted, SuggestionType: model.TypeSignalInstall})
	svc := NewSuggestionService(repo, newFakeActionRepo(), nil, nil)
	ctx := context.Background()

	err := svc.UpdateStatus(ctx, 1, &dto.StatusUpdateDTO{Status: string(model.StatusApproved), AdminResponse: "scheduled"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, repo.byID[1].Status)
	assert.Equal(t, "scheduled", repo.byID[1].AdminResponse)

	err = svc.UpdateStatus(ctx, 2, &dto.StatusUpdateDTO{Status: string(model.StatusApproved)})
	assert.ErrorIs(t, err, ErrStatusTransition)

	err = svc.UpdateStatus(ctx, 1, &dto.StatusUpdateDTO{Status: "SHIPPED"})
	assert.ErrorIs(t, err, ErrParamInvalid)

	err = svc.UpdateStatus(ctx, 999, &dto.StatusUpdateDTO{Status: string(model.StatusApproved)})
	assert.ErrorIs(t, err, ErrSuggestionNotFound)
}

func TestGetStatistics(t *testing.T) {
	t.Parallel()

	repo := newFakeSuggestionRepo()
	repo.counts = []repository.StatusCount{
		{Status: model.StatusPending, Count: 5},
		{Status: model.StatusReviewing, Count: 3},
		{Status: model.StatusApproved, Count: 2},
		{Status: model.StatusRejected, Count: 1},
		{Status: model.StatusCompleted, Count: 4},
	}
	svc := NewSuggestionService(repo, newFakeActionRepo(), nil, nil)

	stats, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(15), stats.TotalCount)
	assert.Equal(t, int64(5), stats.PendingCount)
	assert.Equal(t, int64(3), stats.ReviewingCount)
	assert.Equal(t, int64(2), stats.ApprovedCount)
	assert.Equal(t, int64(1), stats.RejectedCount)
	assert.Equal(t, int64(4), stats.CompletedCount)
}

func TestSyncSuggestionCountsWritesDerivedScore(t *testing.T) {
	t.Parallel()

	repo := newFakeSuggestionRepo()
	repo.add(&model.Suggestion{ID: 1, Status: model.StatusPending, SuggestionType: model.TypeSignalInstall})
	search := &fakeSearchRepo{}
	svc := NewSuggestionService(repo, newFakeActionRepo(), search, nil)

	err := svc.SyncSuggestionCounts(context.Background(), 1, 10, 4, 55)
	require.NoError(t, err)

	assert.Equal(t, 10, repo.byID[1].LikeCount)
	assert.Equal(t, 4, repo.byID[1].CommentCount)
	assert.Equal(t, 43, repo.byID[1].PriorityScore)
	assert.Equal(t, 1, search.indexed)
}
