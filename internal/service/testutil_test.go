package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/antrhizom/stud-i-agency-check/internal/model"
	"github.com/antrhizom/stud-i-agency-check/internal/repository"
)

// In-Memory-Repositories für Service-Tests. Sie bilden das Verhalten der
// gorm-Implementierungen nach, inklusive gorm.ErrRecordNotFound und der
// ID-Vergabe beim Anlegen.

type memStore struct {
	mu      sync.Mutex
	users   map[string]*model.User
	classes map[string]*model.Class
	codes   map[string]*model.LearnerCode
	entries map[string]*model.PracticeEntry
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[string]*model.User),
		classes: make(map[string]*model.Class),
		codes:   make(map[string]*model.LearnerCode),
		entries: make(map[string]*model.PracticeEntry),
	}
}

func newTestRepo() (*repository.Repository, *memStore) {
	st := newMemStore()
	return &repository.Repository{
		User:          &memUserRepo{st: st},
		Class:         &memClassRepo{st: st},
		LearnerCode:   &memLearnerCodeRepo{st: st},
		PracticeEntry: &memPracticeEntryRepo{st: st},
	}, st
}

// ── users ──

type memUserRepo struct{ st *memStore }

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.st.users[user.UserID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, userID string) (*model.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	u, ok := r.st.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, u := range r.st.users {
		if u.Email != nil && *u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) ListByClass(_ context.Context, classID string) ([]model.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []model.User
	for _, u := range r.st.users {
		if u.Role == model.RoleLearner && u.ClassID != nil && *u.ClassID == classID {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out, nil
}

// ── classes ──

type memClassRepo struct{ st *memStore }

func (r *memClassRepo) Create(_ context.Context, class *model.Class) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if class.ClassID == "" {
		class.ClassID = uuid.NewString()
	}
	class.CreatedAt = time.Now()
	cp := *class
	r.st.classes[class.ClassID] = &cp
	return nil
}

func (r *memClassRepo) GetByID(_ context.Context, classID string) (*model.Class, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	c, ok := r.st.classes[classID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memClassRepo) ListByTeacher(_ context.Context, teacherID string) ([]model.Class, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []model.Class
	for _, c := range r.st.classes {
		if c.TeacherID == teacherID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ── learner codes ──

type memLearnerCodeRepo struct{ st *memStore }

func (r *memLearnerCodeRepo) CreateBatch(_ context.Context, codes []model.LearnerCode) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for i := range codes {
		if codes[i].LearnerCodeID == "" {
			codes[i].LearnerCodeID = uuid.NewString()
		}
		cp := codes[i]
		r.st.codes[cp.Code] = &cp
	}
	return nil
}

func (r *memLearnerCodeRepo) GetByCode(_ context.Context, code string) (*model.LearnerCode, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	lc, ok := r.st.codes[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *lc
	return &cp, nil
}

func (r *memLearnerCodeRepo) GetByCodeForUpdate(ctx context.Context, code string) (*model.LearnerCode, error) {
	return r.GetByCode(ctx, code)
}

func (r *memLearnerCodeRepo) MarkUsed(_ context.Context, learnerCodeID, userID string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, lc := range r.st.codes {
		if lc.LearnerCodeID == learnerCodeID {
			lc.Used = true
			lc.UserID = &userID
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *memLearnerCodeRepo) ListByClass(_ context.Context, classID string) ([]model.LearnerCode, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []model.LearnerCode
	for _, lc := range r.st.codes {
		if lc.ClassID == classID {
			out = append(out, *lc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AnimalName < out[j].AnimalName })
	return out, nil
}

func (r *memLearnerCodeRepo) CodeExists(_ context.Context, code string) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	_, ok := r.st.codes[code]
	return ok, nil
}

// ── practice entries ──

type memPracticeEntryRepo struct{ st *memStore }

func (r *memPracticeEntryRepo) Create(_ context.Context, entry *model.PracticeEntry) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if entry.EntryID == "" {
		entry.EntryID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	cp := *entry
	r.st.entries[entry.EntryID] = &cp
	return nil
}

func (r *memPracticeEntryRepo) GetByID(_ context.Context, entryID string) (*model.PracticeEntry, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	e, ok := r.st.entries[entryID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memPracticeEntryRepo) ListByUser(_ context.Context, userID string) ([]model.PracticeEntry, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []model.PracticeEntry
	for _, e := range r.st.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memPracticeEntryRepo) Delete(_ context.Context, entryID string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	delete(r.st.entries, entryID)
	return nil
}

func (r *memPracticeEntryRepo) SetTeacherNote(_ context.Context, entryID string, note *string, at *time.Time) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	e, ok := r.st.entries[entryID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.TeacherNote = note
	e.TeacherNoteAt = at
	return nil
}

// ── fixtures ──

func seedTeacher(st *memStore, email string) *model.User {
	id := uuid.NewString()
	hash := "$2a$10$abcdefghijklmnopqrstuv" // Platzhalter, Tests hashen selbst
	u := &model.User{UserID: id, Role: model.RoleTeacher, Email: &email, PasswordHash: &hash, DisplayName: "Lehrperson"}
	st.users[id] = u
	return u
}

func seedClass(st *memStore, teacherID, variant string) *model.Class {
	c := &model.Class{ClassID: uuid.NewString(), TeacherID: teacherID, Name: "ABU 1a", Variant: variant}
	st.classes[c.ClassID] = c
	return c
}

func seedLearner(st *memStore, classID string) *model.User {
	emoji := "🦊"
	u := &model.User{UserID: uuid.NewString(), Role: model.RoleLearner, DisplayName: "Fuchs", AnimalEmoji: &emoji, ClassID: &classID}
	st.users[u.UserID] = u
	return u
}
