package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// bootstrapEntry is one parsed user definition from the bootstrap string.
type bootstrapEntry struct {
	Email    string
	Password string
	Name     string
	Role     domain.UserRole
}

// Bootstrap provisions users from a config string of the form
// "email:password:name:role;email:password:name;..." where the role
// defaults to USER when omitted.
// Existing users (matched by email) are refreshed with the configured
// name, password and role. A malformed entry is logged and skipped; the
// remaining entries are still processed.
func (s *Service) Bootstrap(ctx context.Context, userList string) error {
	userList = strings.TrimSpace(userList)
	if userList == "" {
		s.log.InfoContext(ctx, "user bootstrap skipped: no users configured")
		return nil
	}

	entries := strings.Split(userList, ";")

	var created, failed int
	for _, raw := range entries {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		entry, err := parseBootstrapEntry(raw)
		if err != nil {
			failed++
			s.log.WarnContext(ctx, "skipping invalid bootstrap user entry",
				slog.String("error", err.Error()))
			continue
		}

		if err := s.upsertBootstrapUser(ctx, entry); err != nil {
			failed++
			s.log.ErrorContext(ctx, "failed to bootstrap user",
				slog.String("email", entry.Email),
				slog.String("error", err.Error()))
			continue
		}

		created++
	}

	s.log.InfoContext(ctx, "user bootstrap finished",
		slog.Int("processed", created),
		slog.Int("failed", failed))

	if created == 0 && failed > 0 {
		return fmt.Errorf("user bootstrap: all %d entries failed", failed)
	}

	return nil
}

func parseBootstrapEntry(raw string) (bootstrapEntry, error) {
	parts := strings.Split(raw, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return bootstrapEntry{}, fmt.Errorf("expected email:password:name[:role], got %d fields", len(parts))
	}

	entry := bootstrapEntry{
		Email:    strings.ToLower(strings.TrimSpace(parts[0])),
		Password: parts[1],
		Name:     strings.TrimSpace(parts[2]),
		Role:     domain.UserRoleUser,
	}
	if len(parts) == 4 {
		entry.Role = domain.UserRole(strings.ToUpper(strings.TrimSpace(parts[3])))
	}

	if entry.Email == "" || !strings.Contains(entry.Email, "@") {
		return bootstrapEntry{}, fmt.Errorf("invalid email %q", entry.Email)
	}
	if entry.Password == "" {
		return bootstrapEntry{}, fmt.Errorf("empty password for %s", entry.Email)
	}
	if entry.Name == "" {
		return bootstrapEntry{}, fmt.Errorf("empty name for %s", entry.Email)
	}
	if !entry.Role.IsValid() {
		return bootstrapEntry{}, fmt.Errorf("invalid role %q for %s", entry.Role, entry.Email)
	}

	return entry, nil
}

func (s *Service) upsertBootstrapUser(ctx context.Context, entry bootstrapEntry) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(entry.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.users.Upsert(ctx, &domain.User{
		Email:        entry.Email,
		Name:         entry.Name,
		PasswordHash: string(hash),
		Role:         entry.Role,
	})
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	return nil
}
