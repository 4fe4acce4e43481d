// Package policy decides how each catalog entry is applied: executed right
// away, confirmed by the user first, or only printed. Allow and block lists
// narrow the catalog by git config key.
package policy
