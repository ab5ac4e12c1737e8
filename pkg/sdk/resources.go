package sdk

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// resource is a CRUD client for one backend collection. Every portal
// resource follows the same route shape: list and create at the collection
// root, get/update/delete at /<id>/.
type resource[T any] struct {
	client *Client
	path   string
}

// List returns every entity in the collection.
func (r resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.get(ctx, r.path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches one entity by id.
func (r resource[T]) Get(ctx context.Context, id int) (*T, error) {
	var item T
	if err := r.client.get(ctx, r.itemPath(id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create validates and persists a new entity, returning the stored form.
func (r resource[T]) Create(ctx context.Context, item T) (*T, error) {
	if err := validate.Struct(item); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", r.path, err)
	}
	var created T
	if err := r.client.post(ctx, r.path, item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the entity with the given id and returns the stored form.
func (r resource[T]) Update(ctx context.Context, id int, item T) (*T, error) {
	if err := validate.Struct(item); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", r.path, err)
	}
	var updated T
	if err := r.client.put(ctx, r.itemPath(id), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the entity with the given id.
func (r resource[T]) Delete(ctx context.Context, id int) error {
	return r.client.delete(ctx, r.itemPath(id), nil)
}

func (r resource[T]) itemPath(id int) string {
	return r.path + strconv.Itoa(id) + "/"
}

// Users accesses the /users/ collection.
func (c *Client) Users() resource[User] { return resource[User]{c, "/users/"} }

// Roles accesses the /roles/ collection.
func (c *Client) Roles() resource[Role] { return resource[Role]{c, "/roles/"} }

// Notices accesses the /notices/ collection.
func (c *Client) Notices() resource[Notice] { return resource[Notice]{c, "/notices/"} }

// Tenders accesses the /tenders/ collection.
func (c *Client) Tenders() resource[Tender] { return resource[Tender]{c, "/tenders/"} }

// NewsEvents accesses the /news-events/ collection.
func (c *Client) NewsEvents() resource[NewsEvent] { return resource[NewsEvent]{c, "/news-events/"} }

// Gallery accesses the /gallery/ collection.
func (c *Client) Gallery() resource[GalleryItem] { return resource[GalleryItem]{c, "/gallery/"} }

// Documents accesses the /documents/ collection.
func (c *Client) Documents() resource[Document] { return resource[Document]{c, "/documents/"} }

// SchemesProjects accesses the /schemes-projects/ collection.
func (c *Client) SchemesProjects() resource[SchemeProject] {
	return resource[SchemeProject]{c, "/schemes-projects/"}
}

// FeedbackEntries accesses the /feedback/ collection.
func (c *Client) FeedbackEntries() resource[Feedback] { return resource[Feedback]{c, "/feedback/"} }

// HelplineQueries accesses the /helpline-queries/ collection.
func (c *Client) HelplineQueries() resource[HelplineQuery] {
	return resource[HelplineQuery]{c, "/helpline-queries/"}
}

// ListPermissions returns the full permission catalogue. Permissions are
// defined by the backend; the client never creates or deletes them.
func (c *Client) ListPermissions(ctx context.Context) ([]Permission, error) {
	var perms []Permission
	if err := c.get(ctx, "/permissions/", &perms); err != nil {
		return nil, err
	}
	return perms, nil
}

// RolePermissionsClient manages the role↔permission relation. Unlike plain
// resources, a pair is deleted by (role, permission) query parameters, not a
// path id.
type RolePermissionsClient struct {
	client *Client
}

// RolePermissions accesses the /role-permissions/ relation.
func (c *Client) RolePermissions() RolePermissionsClient {
	return RolePermissionsClient{c}
}

// List returns every (role, permission) pair.
func (rc RolePermissionsClient) List(ctx context.Context) ([]RolePermission, error) {
	var pairs []RolePermission
	if err := rc.client.get(ctx, "/role-permissions/", &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// ListForRole returns the permission ids currently assigned to one role.
func (rc RolePermissionsClient) ListForRole(ctx context.Context, roleID int) ([]int, error) {
	pairs, err := rc.List(ctx)
	if err != nil {
		return nil, err
	}
	var ids []int
	for _, p := range pairs {
		if p.Role == roleID {
			ids = append(ids, p.Permission)
		}
	}
	return ids, nil
}

// Create grants a permission to a role.
func (rc RolePermissionsClient) Create(ctx context.Context, pair RolePermission) (*RolePermission, error) {
	var created RolePermission
	if err := rc.client.post(ctx, "/role-permissions/", pair, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete revokes a permission from a role.
func (rc RolePermissionsClient) Delete(ctx context.Context, roleID, permissionID int) error {
	query := url.Values{}
	query.Set("role", strconv.Itoa(roleID))
	query.Set("permission", strconv.Itoa(permissionID))
	return rc.client.delete(ctx, "/role-permissions/", query)
}

// UserRolesClient manages the user↔role relation, deleted by query-parameter
// pair like role-permissions.
type UserRolesClient struct {
	client *Client
}

// UserRoles accesses the /user-roles/ relation.
func (c *Client) UserRoles() UserRolesClient {
	return UserRolesClient{c}
}

// List returns every (user, role) pair.
func (uc UserRolesClient) List(ctx context.Context) ([]UserRole, error) {
	var pairs []UserRole
	if err := uc.client.get(ctx, "/user-roles/", &pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// Create assigns a role to a user.
func (uc UserRolesClient) Create(ctx context.Context, pair UserRole) (*UserRole, error) {
	var created UserRole
	if err := uc.client.post(ctx, "/user-roles/", pair, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a role from a user.
func (uc UserRolesClient) Delete(ctx context.Context, userID, roleID int) error {
	query := url.Values{}
	query.Set("user", strconv.Itoa(userID))
	query.Set("role", strconv.Itoa(roleID))
	return uc.client.delete(ctx, "/user-roles/", query)
}
