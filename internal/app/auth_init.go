package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/http"
	"github.com/guttosm/meal-planner/internal/repository"
	"github.com/guttosm/meal-planner/internal/service"
)

const (
	adminRoleName            = "admin"
	accessControlSeedTimeout = 5 * time.Second
)

// domainResources are the resources every household member may read and write.
var domainResources = []string{
	http.ResourceHouseholds,
	http.ResourceIngredients,
	http.ResourceRecipes,
	http.ResourceMealPlans,
	http.ResourcePantries,
	http.ResourceShoppingLists,
}

type roleSeed struct {
	name        string
	description string
	grants      func(p *model.Permission) bool
}

var defaultRoles = []roleSeed{
	{
		name:        service.DefaultRoleName,
		description: "Household member: full access to meal planning resources",
		grants: func(p *model.Permission) bool {
			return slices.Contains(domainResources, p.Resource)
		},
	},
	{
		name:        adminRoleName,
		description: "Administrator role with full access",
		grants:      func(*model.Permission) bool { return true },
	},
}

func grant(resource, action, description string) *model.Permission {
	return &model.Permission{
		Name:        resource + ":" + action,
		Description: description,
		Resource:    resource,
		Action:      action,
		Active:      true,
	}
}

// defaultPermissions lists the domain permissions first, followed by the
// administrative ones that only the admin role receives.
func defaultPermissions() []*model.Permission {
	var permissions []*model.Permission
	for _, resource := range domainResources {
		label := strings.ReplaceAll(resource, "_", " ")
		permissions = append(permissions,
			grant(resource, "read", "Read "+label),
			grant(resource, "write", fmt.Sprintf("Create/update/delete %s", label)),
		)
	}
	return append(permissions,
		grant("users", "read", "Read users"),
		grant("users", "write", "Create/update users"),
		grant("users", "delete", "Delete users"),
		grant("roles", "read", "Read roles"),
		grant("roles", "write", "Create/update roles"),
	)
}

// seedAccessControl makes sure every default permission exists and every
// default role holds at least its default grants. It is safe to run on every
// start: existing documents are reused and roles only ever gain permissions.
// Failures are collected so one bad document does not stop the rest.
func seedAccessControl(
	ctx context.Context,
	roles repository.RoleRepositoryInterface,
	permissions repository.PermissionRepositoryInterface,
) error {
	ctx, cancel := context.WithTimeout(ctx, accessControlSeedTimeout)
	defer cancel()

	var errs []error
	var seeded []*model.Permission
	for _, p := range defaultPermissions() {
		if err := ensurePermission(ctx, permissions, p); err != nil {
			errs = append(errs, err)
			continue
		}
		seeded = append(seeded, p)
	}

	for _, seed := range defaultRoles {
		var ids []string
		for _, p := range seeded {
			if seed.grants(p) {
				ids = append(ids, p.ID.Hex())
			}
		}
		if err := ensureRole(ctx, roles, seed, ids); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ensurePermission sets p.ID to the stored permission, creating it if needed.
func ensurePermission(ctx context.Context, repo repository.PermissionRepositoryInterface, p *model.Permission) error {
	existing, err := repo.FindByResourceAndAction(ctx, p.Resource, p.Action)
	if err != nil {
		return fmt.Errorf("look up permission %s: %w", p.Name, err)
	}
	if existing != nil {
		p.ID = existing.ID
		return nil
	}
	if err := repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create permission %s: %w", p.Name, err)
	}
	log.Info().Str("permission", p.Name).Msg("Created default permission")
	return nil
}

func ensureRole(ctx context.Context, repo repository.RoleRepositoryInterface, seed roleSeed, permissionIDs []string) error {
	existing, err := repo.FindByName(ctx, seed.name)
	if err != nil {
		return fmt.Errorf("look up role %s: %w", seed.name, err)
	}

	if existing == nil {
		role := &model.Role{
			ID:          primitive.NewObjectID(),
			Name:        seed.name,
			Description: seed.description,
			Permissions: permissionIDs,
			Active:      true,
		}
		if err := repo.Create(ctx, role); err != nil {
			return fmt.Errorf("create role %s: %w", seed.name, err)
		}
		log.Info().Str("role", seed.name).Int("permissions", len(permissionIDs)).Msg("Created default role")
		return nil
	}

	var missing []string
	for _, id := range permissionIDs {
		if !slices.Contains(existing.Permissions, id) {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	existing.Permissions = append(existing.Permissions, missing...)
	if err := repo.Update(ctx, existing); err != nil {
		return fmt.Errorf("grant defaults to role %s: %w", seed.name, err)
	}
	log.Info().Str("role", seed.name).Int("granted", len(missing)).Msg("Granted missing default permissions")
	return nil
}
