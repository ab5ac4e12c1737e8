package sdk

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// reconcileConcurrency bounds the grant/revoke fan-out per reconciliation.
const reconcileConcurrency = 8

// ReconcileOp distinguishes the two edit kinds in a reconciliation.
type ReconcileOp string

const (
	OpGrant  ReconcileOp = "grant"
	OpRevoke ReconcileOp = "revoke"
)

// ReconcileResult is the outcome of one grant or revoke call.
type ReconcileResult struct {
	Op           ReconcileOp
	PermissionID int
	Err          error
}

// Diff computes the minimal edit set transforming the current permission
// assignment into the target one. Inputs are treated as sets (duplicates
// ignored); the returned slices are disjoint by construction and sorted for
// deterministic application and output.
func Diff(current, target []int) (grant, revoke []int) {
	cur := make(map[int]bool, len(current))
	for _, id := range current {
		cur[id] = true
	}
	tgt := make(map[int]bool, len(target))
	for _, id := range target {
		tgt[id] = true
	}

	for id := range tgt {
		if !cur[id] {
			grant = append(grant, id)
		}
	}
	for id := range cur {
		if !tgt[id] {
			revoke = append(revoke, id)
		}
	}
	sort.Ints(grant)
	sort.Ints(revoke)
	return grant, revoke
}

// Reconcile applies the Diff of current versus target to the given role:
// one create per missing assignment, one delete per surplus one. The calls
// are independent and run concurrently with a bounded group; every call runs
// even when siblings fail, and the per-item results are returned so a caller
// can retry exactly the failed ids. The error aggregates the failures by
// (op, permission id); a nil error with empty results means the sets already
// matched.
func (c *Client) Reconcile(ctx context.Context, roleID int, current, target []int) ([]ReconcileResult, error) {
	grant, revoke := Diff(current, target)
	if len(grant) == 0 && len(revoke) == 0 {
		return nil, nil
	}

	results := make([]ReconcileResult, 0, len(grant)+len(revoke))
	for _, id := range grant {
		results = append(results, ReconcileResult{Op: OpGrant, PermissionID: id})
	}
	for _, id := range revoke {
		results = append(results, ReconcileResult{Op: OpRevoke, PermissionID: id})
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(reconcileConcurrency)
	for i := range results {
		g.Go(func() error {
			r := &results[i]
			switch r.Op {
			case OpGrant:
				_, r.Err = c.RolePermissions().Create(ctx, RolePermission{Role: roleID, Permission: r.PermissionID})
			case OpRevoke:
				r.Err = c.RolePermissions().Delete(ctx, roleID, r.PermissionID)
			}
			// Collected per item; the group is only used for bounding.
			return nil
		})
	}
	g.Wait()

	var failed []string
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, fmt.Sprintf("%s %d", r.Op, r.PermissionID))
		}
	}
	if len(failed) > 0 {
		return results, fmt.Errorf("failed to update permissions for role %d: %s", roleID, strings.Join(failed, ", "))
	}
	return results, nil
}

// GroupByModule buckets permissions by the module part of their dotted name,
// the substring before the first ".". Names without a dot land under
// "other". Display-only: grouping has no effect on reconciliation.
func GroupByModule(perms []Permission) map[string][]Permission {
	groups := make(map[string][]Permission)
	for _, p := range perms {
		module := "other"
		if i := strings.Index(p.PermissionName, "."); i > 0 {
			module = p.PermissionName[:i]
		}
		groups[module] = append(groups[module], p)
	}
	return groups
}
