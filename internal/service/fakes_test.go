package service

import (
	"context"
	"errors"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"
	"sort"
	"sync"
)

type fakeRecords struct {
	mu        sync.Mutex
	records   map[string]model.TrainingRecord
	upsertErr error
	gets      int
}

func newFakeRecords(records ...model.TrainingRecord) *fakeRecords {
	f := &fakeRecords{records: make(map[string]model.TrainingRecord)}
	for _, r := range records {
		f.records[r.StudentID] = r
	}
	return f
}

func (f *fakeRecords) GetTrainingRecord(ctx context.Context, studentID string) (*model.TrainingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	r, ok := f.records[studentID]
	if !ok {
		return nil, util.ErrTrainingRecordNotFound
	}
	return &r, nil
}

func (f *fakeRecords) ListTrainingRecords(ctx context.Context) ([]model.TrainingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.records))
	for sid := range f.records {
		ids = append(ids, sid)
	}
	sort.Strings(ids)
	out := make([]model.TrainingRecord, 0, len(ids))
	for _, sid := range ids {
		out = append(out, f.records[sid])
	}
	return out, nil
}

func (f *fakeRecords) UpsertTrainingRecord(ctx context.Context, record *model.TrainingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.records[record.StudentID] = *record
	return nil
}

type fakeCache struct {
	mu          sync.Mutex
	reports     map[string]model.TrainingReport
	invalidated []string
	setErr      error
}

func newFakeCache() *fakeCache {
	return &fakeCache{reports: make(map[string]model.TrainingReport)}
}

func (c *fakeCache) Get(ctx context.Context, studentID string) (*model.TrainingReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.reports[studentID]
	if !ok {
		return nil, false
	}
	return &r, true
}

func (c *fakeCache) Set(ctx context.Context, studentID string, report *model.TrainingReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.reports[studentID] = *report
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, studentIDs ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sid := range studentIDs {
		delete(c.reports, sid)
	}
	c.invalidated = append(c.invalidated, studentIDs...)
	return nil
}

type fakeMembers struct {
	members []model.Member
	err     error
}

func (f *fakeMembers) GetMember(ctx context.Context, studentID string) (*model.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.members {
		if m.StudentID == studentID {
			m := m
			return &m, nil
		}
	}
	return nil, util.ErrMemberNotFound
}

func (f *fakeMembers) ListMembers(ctx context.Context, position string, page, limit int) ([]model.Member, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var filtered []model.Member
	for _, m := range f.members {
		if position == "" || m.Position == position {
			filtered = append(filtered, m)
		}
	}
	start, end := util.PageBounds(len(filtered), page, limit)
	return filtered[start:end], int64(len(filtered)), nil
}

func (f *fakeMembers) CountMembers(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.members)), nil
}

var errBackend = errors.New("backend unavailable")

type fakeAchievements struct {
	catalog []model.Achievement
	earned  map[string][]string
}

func (f *fakeAchievements) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	return f.catalog, nil
}

func (f *fakeAchievements) ListMemberAchievementCodes(ctx context.Context, studentID string) ([]string, error) {
	return f.earned[studentID], nil
}

type fakePhotos struct {
	photos    []model.Photo
	createErr error
}

func (f *fakePhotos) ListPhotos(ctx context.Context, studentID, category string) ([]model.Photo, error) {
	out := make([]model.Photo, 0)
	for _, p := range f.photos {
		if p.StudentID == studentID && (category == "" || p.Category == category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePhotos) CreatePhoto(ctx context.Context, photo *model.Photo) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.photos = append(f.photos, *photo)
	return nil
}

type fakeMessages struct {
	messages []model.LeaderMessage
	meta     model.MessagePageMeta
}

func (f *fakeMessages) ListLeaderMessages(ctx context.Context) ([]model.LeaderMessage, error) {
	return append([]model.LeaderMessage(nil), f.messages...), nil
}

func (f *fakeMessages) GetLeaderMessage(ctx context.Context, id string) (*model.LeaderMessage, error) {
	for _, m := range f.messages {
		if m.Code == id {
			m := m
			return &m, nil
		}
	}
	return nil, util.ErrMessageNotFound
}

func (f *fakeMessages) GetMessagePageMeta(ctx context.Context) (*model.MessagePageMeta, error) {
	meta := f.meta
	return &meta, nil
}
