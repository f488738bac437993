package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"lmsmodules/models"
	"lmsmodules/pkg/logger"
	"lmsmodules/repository"
	"lmsmodules/services"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// SeedData is the document read from a seed file.
type SeedData struct {
	// Actor is the username recorded as creator of the seeded groups.
	// Defaults to the first listed user.
	Actor        string      `yaml:"actor"`
	Users        []SeedUser  `yaml:"users"`
	ModuleGroups []SeedGroup `yaml:"module_groups"`
}

// SeedUser is a user upserted by username before any group is created.
type SeedUser struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
}

// SeedGroup is a module group created with its modules unless a group with
// the same name already exists.
type SeedGroup struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Icon        string       `yaml:"icon"`
	URL         string       `yaml:"url"`
	Modules     []SeedModule `yaml:"modules"`
}

// SeedModule is a module created inside its SeedGroup.
type SeedModule struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// SeedResult counts what ApplySeed did.
type SeedResult struct {
	Users         int
	GroupsCreated int
	GroupsSkipped int
}

// GroupCreator creates a module group with its modules.
type GroupCreator interface {
	CreateGroup(ctx context.Context, group *models.ModuleGroup, actorID uint) (*models.ModuleGroup, error)
}

// LoadSeed reads and parses the seed file at path.
func LoadSeed(path string) (*SeedData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a seed document and resolves its actor.
func ParseSeed(data []byte) (*SeedData, error) {
	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if len(seed.Users) == 0 {
		return nil, fmt.Errorf("seed data must list at least one user")
	}
	if seed.Actor == "" {
		seed.Actor = seed.Users[0].Username
	}
	if !seed.hasUser(seed.Actor) {
		return nil, fmt.Errorf("seed actor %q is not listed in users", seed.Actor)
	}
	return &seed, nil
}

func (s *SeedData) hasUser(username string) bool {
	for _, u := range s.Users {
		if u.Username == username {
			return true
		}
	}
	return false
}

// Model converts the seed entry into an unsaved group with its modules.
func (g SeedGroup) Model() models.ModuleGroup {
	group := models.ModuleGroup{
		Name:        strings.TrimSpace(g.Name),
		Description: models.StringPtr(g.Description),
		Icon:        g.Icon,
		URL:         g.URL,
	}
	for _, m := range g.Modules {
		group.Modules = append(group.Modules, models.Module{
			Name:        m.Name,
			URL:         m.URL,
			Icon:        models.StringPtr(m.Icon),
			Description: models.StringPtr(m.Description),
		})
	}
	return group
}

// ApplySeed upserts the seed users and creates every group whose name is not
// taken yet. Existing groups are left untouched.
func ApplySeed(ctx context.Context, seed *SeedData, userRepo repository.UserRepository, groupRepo repository.ModuleGroupRepository, creator GroupCreator) (*SeedResult, error) {
	result := &SeedResult{}

	userIDs := make(map[string]uint, len(seed.Users))
	for _, su := range seed.Users {
		user := &models.User{Username: su.Username, Email: models.StringPtr(su.Email)}
		if err := userRepo.FirstOrCreate(nil, user); err != nil {
			logger.Errorf("Failed to seed user %s: %v", su.Username, err)
			return nil, fmt.Errorf("failed to seed user %s: %w", su.Username, err)
		}
		userIDs[su.Username] = user.ID
		result.Users++
	}
	actorID := userIDs[seed.Actor]

	for _, sg := range seed.ModuleGroups {
		group := sg.Model()

		_, err := groupRepo.GetByName(nil, group.Name)
		if err == nil {
			logger.Debugf("Module group %q already exists, skipping", group.Name)
			result.GroupsSkipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up module group %q: %w", group.Name, err)
		}

		if _, err := creator.CreateGroup(ctx, &group, actorID); err != nil {
			return nil, fmt.Errorf("failed to seed module group %q: %w", group.Name, err)
		}
		result.GroupsCreated++
	}

	logger.Infof("Seed applied: users=%d, groups created=%d, skipped=%d",
		result.Users, result.GroupsCreated, result.GroupsSkipped)
	return result, nil
}

// Seed loads path and applies it against the global database.
func Seed(ctx context.Context, path string) (*SeedResult, error) {
	logger.Infof("Loading seed data from %s", path)

	seed, err := LoadSeed(path)
	if err != nil {
		return nil, err
	}
	return ApplySeed(ctx, seed,
		repository.NewUserRepository(),
		repository.NewModuleGroupRepository(),
		services.NewModuleGroupService(),
	)
}
