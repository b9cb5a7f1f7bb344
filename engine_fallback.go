//go:build parsefp_nogrisu

package parsefp

// Built with the parsefp_nogrisu tag: every conversion goes through
// the general-purpose converter. Observable results are identical to
// the default build.
var activeEngine engine = strconvEngine{}
