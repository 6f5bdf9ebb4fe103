package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/internal/domain/dto"
	"github.com/Badsnus/club-directory/internal/domain/entity"
)

// memClubStorage keeps clubs in insertion order and stamps UpdatedAt from a
// counter so ordering is deterministic.
type memClubStorage struct {
	clubs []entity.Club
	clock int
}

func (m *memClubStorage) tick() time.Time {
	m.clock++
	return time.Date(2026, 1, 1, 0, 0, m.clock, 0, time.UTC)
}

func (m *memClubStorage) Create(_ context.Context, club *entity.Club) (*entity.Club, error) {
	club.ID = fmt.Sprintf("club-%d", len(m.clubs)+1)
	club.CreatedAt = m.tick()
	club.UpdatedAt = club.CreatedAt
	m.clubs = append(m.clubs, *club)
	return club, nil
}

func (m *memClubStorage) Get(_ context.Context, id string) (*entity.Club, error) {
	for i := range m.clubs {
		if m.clubs[i].ID == id {
			c := m.clubs[i]
			return &c, nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (m *memClubStorage) Update(_ context.Context, club *entity.Club) (*entity.Club, error) {
	for i := range m.clubs {
		if m.clubs[i].ID == club.ID {
			club.UpdatedAt = m.tick()
			m.clubs[i] = *club
			return club, nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (m *memClubStorage) Delete(_ context.Context, id string) error {
	for i := range m.clubs {
		if m.clubs[i].ID == id {
			m.clubs = append(m.clubs[:i], m.clubs[i+1:]...)
			return nil
		}
	}
	return errorz.ErrNotFound
}

func (m *memClubStorage) List(ctx context.Context, sortKey string) ([]entity.Club, error) {
	return m.Filter(ctx, dto.ClubFilter{}, sortKey)
}

func (m *memClubStorage) Filter(_ context.Context, filter dto.ClubFilter, sortKey string) ([]entity.Club, error) {
	var out []entity.Club
	for _, c := range m.clubs {
		if filter.ID != "" && c.ID != filter.ID {
			continue
		}
		if filter.OwnerEmail != "" && c.OwnerEmail != filter.OwnerEmail {
			continue
		}
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, c)
	}
	if sortKey == "-updated_date" {
		sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	}
	return out, nil
}

type memUserStorage struct {
	users []entity.User
}

func (m *memUserStorage) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	user.ID = fmt.Sprintf("user-%d", len(m.users)+1)
	user.CreatedAt = time.Date(2026, 1, 1, 0, 0, len(m.users), 0, time.UTC)
	m.users = append(m.users, *user)
	return user, nil
}

func (m *memUserStorage) Get(_ context.Context, id string) (*entity.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (m *memUserStorage) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (m *memUserStorage) List(_ context.Context, sortKey string) ([]entity.User, error) {
	out := append([]entity.User(nil), m.users...)
	if sortKey == "-created_date" {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out, nil
}

func (m *memUserStorage) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	for i := range m.users {
		if m.users[i].ID == user.ID {
			m.users[i] = *user
			return user, nil
		}
	}
	return nil, errorz.ErrNotFound
}

type recordingNotifier struct {
	created []string
	deleted []string
}

func (r *recordingNotifier) ClubCreated(club *entity.Club) { r.created = append(r.created, club.Name) }

func (r *recordingNotifier) ClubDeleted(club *entity.Club, _ *entity.User) {
	r.deleted = append(r.deleted, club.Name)
}

type recordingMailer struct {
	codes  map[string]string
	leader map[string]bool
	err    error
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{codes: map[string]string{}, leader: map[string]bool{}}
}

func (r *recordingMailer) SendLoginCode(to string, code string) error {
	if r.err != nil {
		return r.err
	}
	r.codes[to] = code
	return nil
}

func (r *recordingMailer) SendLeaderStatus(to string, _ string, approved bool) {
	r.leader[to] = approved
}

type memCodeStorage struct {
	codes    map[string]dto.LoginCode
	attempts map[string]int64
}

func (m *memCodeStorage) Get(_ context.Context, email string) (dto.LoginCode, error) {
	code, ok := m.codes[email]
	if !ok {
		return dto.LoginCode{}, errorz.ErrInvalidCode
	}
	return code, nil
}

func (m *memCodeStorage) Set(_ context.Context, email string, code dto.LoginCode, _ time.Duration) error {
	m.codes[email] = code
	delete(m.attempts, email)
	return nil
}

func (m *memCodeStorage) Fail(_ context.Context, email string, _ time.Duration) (int64, error) {
	m.attempts[email]++
	return m.attempts[email], nil
}

func (m *memCodeStorage) Clear(_ context.Context, email string) error {
	delete(m.codes, email)
	delete(m.attempts, email)
	return nil
}
