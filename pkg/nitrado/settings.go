package nitrado

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// listSeparator joins membership list members in the settings value. The
// service stores the lists as a single carriage-return-separated string.
const listSeparator = "\r"

// settingWrite is the body of a settings POST: one value under one category.
type settingWrite struct {
	Category string `json:"category"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}

// ManageList adds members to or removes members from one of the membership
// lists. The update is a read-modify-write against the settings endpoint:
// the current list is fetched, combined with members as a set, and written
// back in full. A failed fetch performs no write.
//
// Member order and duplicates are not preserved; the written list is sorted.
// Concurrent callers mutating the same list can still lose updates — the
// service offers no transactional settings write.
func (c *Client) ManageList(ctx context.Context, serviceID string, action ListAction, list ListType, members []string) (*Response, error) {
	switch list {
	case ListWhitelist, ListBans, ListPriority:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownListType, list)
	}
	switch action {
	case ActionAdd, ActionRemove:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	env, err := c.do(ctx, http.MethodGet, servicePath(serviceID), nil)
	if err != nil {
		c.log.Error("failed to read current settings", "service_id", serviceID, "list", list, "error", err)
		return nil, fmt.Errorf("read settings: %w", err)
	}
	gs, err := gameserverFromEnvelope(env)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	current := splitList(gs.Settings.Value("general", string(list)))
	for _, m := range members {
		switch action {
		case ActionAdd:
			current[m] = struct{}{}
		case ActionRemove:
			delete(current, m)
		}
	}

	write := settingWrite{
		Category: "general",
		Key:      string(list),
		Value:    joinList(current),
	}
	env, err = c.do(ctx, http.MethodPost, servicePath(serviceID)+"/settings", write)
	if err != nil {
		return nil, err
	}
	return &Response{Status: env.Status, Message: env.Message}, nil
}

// ListMembers returns the current members of a membership list, sorted.
func (c *Client) ListMembers(ctx context.Context, serviceID string, list ListType) ([]string, error) {
	switch list {
	case ListWhitelist, ListBans, ListPriority:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownListType, list)
	}

	gs, err := c.GetServerDetails(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	set := splitList(gs.Settings.Value("general", string(list)))
	members := make([]string, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	sort.Strings(members)
	return members, nil
}

// AddListMembers adds members to a membership list.
func (c *Client) AddListMembers(ctx context.Context, serviceID string, list ListType, members ...string) (*Response, error) {
	return c.ManageList(ctx, serviceID, ActionAdd, list, members)
}

// RemoveListMembers removes members from a membership list.
func (c *Client) RemoveListMembers(ctx context.Context, serviceID string, list ListType, members ...string) (*Response, error) {
	return c.ManageList(ctx, serviceID, ActionRemove, list, members)
}

// splitList parses the stored list value into a set, dropping empty entries
// so an empty stored value yields an empty set.
func splitList(value string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, m := range strings.Split(value, listSeparator) {
		if m != "" {
			set[m] = struct{}{}
		}
	}
	return set
}

// joinList serializes a member set back into the stored form, sorted for a
// stable result.
func joinList(set map[string]struct{}) string {
	members := make([]string, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	sort.Strings(members)
	return strings.Join(members, listSeparator)
}
