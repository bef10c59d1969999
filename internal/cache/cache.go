package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tiadeasalon/salon-manager/internal/config"
	"github.com/tiadeasalon/salon-manager/internal/models"
)

const (
	keyClients      = "salon:clients"
	keyAppointments = "salon:appointments"

	// Snapshots servem como último valor conhecido quando o banco está
	// fora do ar; não são fonte de verdade.
	snapshotTTL = 24 * time.Hour

	// As flags diárias embutem a data na chave; o TTL só garante que o
	// redis não acumule chaves velhas.
	flagTTL = 48 * time.Hour
)

type Store struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return &Store{rdb: rdb}
}

func NewWithClient(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// --------------------------------------------------
// Snapshots (último valor conhecido das listas)
// --------------------------------------------------

func (s *Store) SaveClients(ctx context.Context, clients []models.Client) error {
	return s.saveJSON(ctx, keyClients, clients)
}

func (s *Store) LoadClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := s.loadJSON(ctx, keyClients, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) SaveAppointments(ctx context.Context, apps []models.Appointment) error {
	return s.saveJSON(ctx, keyAppointments, apps)
}

func (s *Store) LoadAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := s.loadJSON(ctx, keyAppointments, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) saveJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, b, snapshotTTL).Err()
}

func (s *Store) loadJSON(ctx context.Context, key string, v any) error {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// --------------------------------------------------
// Flags diárias (lembrete enviado, aniversário conferido)
// --------------------------------------------------

func DayKey(now time.Time) string {
	return now.Format("2006-01-02")
}

func reminderKey(clientID uint, day string) string {
	return "salon:reminder_sent:" + day + ":" + strconv.FormatUint(uint64(clientID), 10)
}

func (s *Store) MarkReminderSent(ctx context.Context, clientID uint, now time.Time) error {
	return s.rdb.Set(ctx, reminderKey(clientID, DayKey(now)), "1", flagTTL).Err()
}

func (s *Store) ReminderSentToday(ctx context.Context, clientID uint, now time.Time) bool {
	n, err := s.rdb.Exists(ctx, reminderKey(clientID, DayKey(now))).Result()
	return err == nil && n > 0
}

func (s *Store) MarkBirthdayChecked(ctx context.Context, now time.Time) error {
	return s.rdb.Set(ctx, "salon:birthday_checked:"+DayKey(now), "1", flagTTL).Err()
}

func (s *Store) BirthdayCheckedToday(ctx context.Context, now time.Time) bool {
	n, err := s.rdb.Exists(ctx, "salon:birthday_checked:"+DayKey(now)).Result()
	return err == nil && n > 0
}
