// Package hero defines the Dota Underlords entity model: heroes, the
// alliances they belong to, and the Universe registry that owns both.
//
// # Identity
//
// Heroes and alliances are identified by name. The loader guarantees that no
// two records share a name, so a name uniquely identifies an entity for the
// lifetime of a Universe and pointer comparison is equivalent to name
// comparison within one Universe.
//
// # Ownership
//
// The Universe is the arena: it owns every Hero and Alliance built by the
// loader. All other references (a hero's alliance list, an alliance's
// member set, the ace marker) are non-owning pointers into the Universe.
// Entities are immutable once the Universe is built; the team engine only
// ever reads them.
package hero
