package repository

import (
	"context"
	"flagguard_backend/internal/model"
	"flagguard_backend/internal/util"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Dataset 静态数据集文件结构
type Dataset struct {
	Members         []model.Member           `yaml:"members"`
	Achievements    AchievementSection       `yaml:"achievements"`
	TrainingRecords []model.TrainingRecord   `yaml:"trainingRecords"`
	Photos          map[string][]model.Photo `yaml:"photos"`
	Messages        MessageSection           `yaml:"messages"`
}

type AchievementSection struct {
	Catalog []model.Achievement `yaml:"catalog"`
	Members map[string][]string `yaml:"members"`
}

type MessageSection struct {
	model.MessagePageMeta `yaml:",inline"`
	List                  []model.LeaderMessage `yaml:"list"`
}

// LoadDataset 读取并校验 YAML 数据集
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	if err := ds.normalize(); err != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", path, err)
	}
	return &ds, nil
}

// SaveDataset 写回 YAML 数据集，先写临时文件再替换
func SaveDataset(path string, ds *Dataset) error {
	raw, err := yaml.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return os.Rename(tmp, path)
}

func (ds *Dataset) normalize() error {
	seen := make(map[string]bool, len(ds.Members))
	for _, m := range ds.Members {
		if m.StudentID == "" {
			return fmt.Errorf("member %q has no studentId", m.Name)
		}
		if seen[m.StudentID] {
			return fmt.Errorf("duplicate member %s", m.StudentID)
		}
		seen[m.StudentID] = true
	}

	seen = make(map[string]bool, len(ds.TrainingRecords))
	for _, r := range ds.TrainingRecords {
		if r.StudentID == "" {
			return fmt.Errorf("training record without studentId")
		}
		if seen[r.StudentID] {
			return fmt.Errorf("duplicate training record %s", r.StudentID)
		}
		seen[r.StudentID] = true
	}

	for i := range ds.Achievements.Catalog {
		ds.Achievements.Catalog[i].SortOrder = i + 1
	}
	for i := range ds.Messages.Categories {
		ds.Messages.Categories[i].SortOrder = i + 1
	}
	for i := range ds.Messages.List {
		ds.Messages.List[i].SortOrder = i + 1
	}
	for sid, photos := range ds.Photos {
		for i := range photos {
			photos[i].StudentID = sid
		}
	}

	if ds.Messages.PageTitle == "" {
		ds.Messages.PageTitle = model.DefaultMessagePageTitle
	}
	if ds.Messages.PageSubtitle == "" {
		ds.Messages.PageSubtitle = model.DefaultMessagePageSubtitle
	}
	if ds.Messages.Generations == 0 {
		ds.Messages.Generations = model.DefaultMessageGenerations
	}
	return nil
}

// StaticStore 以内存数据集实现各数据源接口
// 写入的训练记录与照片保存在内存中，Reload 后仍然保留
type StaticStore struct {
	path string

	mu           sync.RWMutex
	members      map[string]model.Member
	memberIDs    []string
	records      map[string]model.TrainingRecord
	catalog      []model.Achievement
	earned       map[string][]string
	photos       map[string][]model.Photo
	messages     []model.LeaderMessage
	meta         model.MessagePageMeta
	writtenRecs  map[string]model.TrainingRecord
	uploadedPics map[string][]model.Photo
}

func NewStaticStore(path string) (*StaticStore, error) {
	s := &StaticStore{
		path:         path,
		writtenRecs:  make(map[string]model.TrainingRecord),
		uploadedPics: make(map[string][]model.Photo),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStaticStoreFromDataset 直接使用已解析的数据集，Reload 不可用
func NewStaticStoreFromDataset(ds *Dataset) *StaticStore {
	s := &StaticStore{
		writtenRecs:  make(map[string]model.TrainingRecord),
		uploadedPics: make(map[string][]model.Photo),
	}
	s.apply(ds)
	return s
}

func (s *StaticStore) Path() string {
	return s.path
}

// Reload 重新读取数据集文件，失败时保留原数据
func (s *StaticStore) Reload() error {
	if s.path == "" {
		return fmt.Errorf("static store has no dataset path")
	}
	ds, err := LoadDataset(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(ds)
	return nil
}

// apply 调用方持有写锁（构造时除外）
func (s *StaticStore) apply(ds *Dataset) {
	s.members = make(map[string]model.Member, len(ds.Members))
	s.memberIDs = make([]string, 0, len(ds.Members))
	for _, m := range ds.Members {
		s.members[m.StudentID] = m
		s.memberIDs = append(s.memberIDs, m.StudentID)
	}
	sort.Strings(s.memberIDs)

	s.records = make(map[string]model.TrainingRecord, len(ds.TrainingRecords))
	for _, r := range ds.TrainingRecords {
		s.records[r.StudentID] = r
	}
	for sid, r := range s.writtenRecs {
		s.records[sid] = r
	}

	s.catalog = ds.Achievements.Catalog
	s.earned = ds.Achievements.Members
	if s.earned == nil {
		s.earned = make(map[string][]string)
	}

	s.photos = make(map[string][]model.Photo, len(ds.Photos))
	for sid, photos := range ds.Photos {
		s.photos[sid] = append([]model.Photo(nil), photos...)
	}
	for sid, photos := range s.uploadedPics {
		s.photos[sid] = append(s.photos[sid], photos...)
	}

	s.messages = ds.Messages.List
	s.meta = ds.Messages.MessagePageMeta
}

func (s *StaticStore) GetMember(ctx context.Context, studentID string) (*model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.members[studentID]
	if !ok {
		return nil, util.ErrMemberNotFound
	}
	return &m, nil
}

func (s *StaticStore) ListMembers(ctx context.Context, position string, page, limit int) ([]model.Member, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]model.Member, 0, len(s.memberIDs))
	for _, sid := range s.memberIDs {
		m := s.members[sid]
		if position != "" && m.Position != position {
			continue
		}
		filtered = append(filtered, m)
	}

	start, end := util.PageBounds(len(filtered), page, limit)
	return filtered[start:end], int64(len(filtered)), nil
}

func (s *StaticStore) CountMembers(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.members)), nil
}

func (s *StaticStore) GetTrainingRecord(ctx context.Context, studentID string) (*model.TrainingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[studentID]
	if !ok {
		return nil, util.ErrTrainingRecordNotFound
	}
	clone := cloneRecord(r)
	return &clone, nil
}

func (s *StaticStore) ListTrainingRecords(ctx context.Context) ([]model.TrainingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for sid := range s.records {
		ids = append(ids, sid)
	}
	sort.Strings(ids)

	records := make([]model.TrainingRecord, 0, len(ids))
	for _, sid := range ids {
		records = append(records, cloneRecord(s.records[sid]))
	}
	return records, nil
}

// StudentIDs 当前有训练记录的学号，升序
func (s *StaticStore) StudentIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for sid := range s.records {
		ids = append(ids, sid)
	}
	sort.Strings(ids)
	return ids
}

func (s *StaticStore) UpsertTrainingRecord(ctx context.Context, record *model.TrainingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := cloneRecord(*record)
	s.records[record.StudentID] = clone
	s.writtenRecs[record.StudentID] = clone
	return nil
}

func (s *StaticStore) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Achievement(nil), s.catalog...), nil
}

func (s *StaticStore) ListMemberAchievementCodes(ctx context.Context, studentID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.earned[studentID]...), nil
}

func (s *StaticStore) ListPhotos(ctx context.Context, studentID, category string) ([]model.Photo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	photos := make([]model.Photo, 0)
	for _, p := range s.photos[studentID] {
		if category != "" && p.Category != category {
			continue
		}
		photos = append(photos, p)
	}
	return photos, nil
}

func (s *StaticStore) CreatePhoto(ctx context.Context, photo *model.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if photo.ID == "" {
		photo.ID = model.GenerateUUID()
	}
	s.photos[photo.StudentID] = append(s.photos[photo.StudentID], *photo)
	s.uploadedPics[photo.StudentID] = append(s.uploadedPics[photo.StudentID], *photo)
	return nil
}

func (s *StaticStore) ListLeaderMessages(ctx context.Context) ([]model.LeaderMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := append([]model.LeaderMessage(nil), s.messages...)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].IsCaptain && !messages[j].IsCaptain
	})
	return messages, nil
}

func (s *StaticStore) GetLeaderMessage(ctx context.Context, id string) (*model.LeaderMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.messages {
		if m.Code == id {
			msg := m
			return &msg, nil
		}
	}
	return nil, util.ErrMessageNotFound
}

func (s *StaticStore) GetMessagePageMeta(ctx context.Context) (*model.MessagePageMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meta := s.meta
	meta.Categories = append([]model.MessageCategory(nil), s.meta.Categories...)
	return &meta, nil
}

func cloneRecord(r model.TrainingRecord) model.TrainingRecord {
	r.WeeklyHours = append([]float64(nil), r.WeeklyHours...)
	r.Milestones = append([]model.Milestone(nil), r.Milestones...)
	if r.PhotoStats != nil {
		stats := make(map[string]int, len(r.PhotoStats))
		for k, v := range r.PhotoStats {
			stats[k] = v
		}
		r.PhotoStats = stats
	}
	return r
}
