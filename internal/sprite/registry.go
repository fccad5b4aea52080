package sprite

import (
	"sort"

	"github.com/google/uuid"
)

// Handle identifies a registered actor.
type Handle uuid.UUID

// Actor is anything that can be registered: it exposes its movement state.
type Actor interface {
	State() *Mover
}

// Registry tracks actors and their named group memberships. Membership is
// a set of handles per group, so no actor carries back-references to its
// groups: killing a handle removes it from every group in one place.
type Registry struct {
	actors  map[Handle]Actor
	groups  map[string]map[Handle]struct{}
	joined  map[Handle]map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actors: make(map[Handle]Actor),
		groups: make(map[string]map[Handle]struct{}),
		joined: make(map[Handle]map[string]struct{}),
	}
}

// Add registers the actor under a fresh handle and joins it to the given
// groups.
func (r *Registry) Add(a Actor, groups ...string) Handle {
	h := Handle(uuid.New())
	r.actors[h] = a
	r.joined[h] = make(map[string]struct{})
	for _, g := range groups {
		r.Join(h, g)
	}
	return h
}

// Join adds the handle to a group. Joining a group twice or joining with
// an unknown handle is a no-op.
func (r *Registry) Join(h Handle, group string) {
	if _, ok := r.actors[h]; !ok {
		return
	}
	set, ok := r.groups[group]
	if !ok {
		set = make(map[Handle]struct{})
		r.groups[group] = set
	}
	set[h] = struct{}{}
	r.joined[h][group] = struct{}{}
}

// Kill removes the handle from every group and forgets the actor. After
// Kill the handle is absent from all collections. Killing an unknown
// handle is a no-op, so a second Kill changes nothing.
func (r *Registry) Kill(h Handle) {
	for g := range r.joined[h] {
		delete(r.groups[g], h)
	}
	delete(r.joined, h)
	delete(r.actors, h)
}

// Get returns the actor registered under the handle.
func (r *Registry) Get(h Handle) (Actor, bool) {
	a, ok := r.actors[h]
	return a, ok
}

// Contains reports whether the handle is currently a member of the group.
func (r *Registry) Contains(group string, h Handle) bool {
	_, ok := r.groups[group][h]
	return ok
}

// Members returns the actors in a group. Order is unspecified; callers
// that need draw or update ordering sort by vertical center themselves.
func (r *Registry) Members(group string) []Actor {
	set := r.groups[group]
	out := make([]Actor, 0, len(set))
	for h := range set {
		out = append(out, r.actors[h])
	}
	return out
}

// Groups returns the sorted names of the groups the handle belongs to.
func (r *Registry) Groups(h Handle) []string {
	names := make([]string, 0, len(r.joined[h]))
	for g := range r.joined[h] {
		names = append(names, g)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of members in a group.
func (r *Registry) Len(group string) int {
	return len(r.groups[group])
}
