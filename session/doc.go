// Package session bundles a Network with an optional NetworkLayout and
// DisplayOptions into a single unit a caller can serialize, extract a
// compressed sub-session from, or hand to a renderer. It also implements
// the BIF session XML format (read/write). WriteBIF emits an attached
// layout's row and column attributes; ReadBIF restores the network,
// display options and plugin data but not the layout, so a laid-out
// session does not round-trip through BIF unchanged.
package session
