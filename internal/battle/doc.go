// Package battle holds the in-battle view of combatants and the damage and
// accuracy pipeline that runs between them.
//
// A combatant lives in two layers. BenchPokemon survives switching: current
// HP, PP and the major ailment. BattlePokemon is rebuilt every time a
// combatant enters a slot: stat stages, volatile ailments, overlay hooks and a
// mutable copy of the build.
package battle
