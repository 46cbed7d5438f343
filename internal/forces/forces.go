// Package forces provides the stock force generators: pluggable
// strategies the world invokes once per (generator, object) binding
// per tick. Generators only call the accumulation API of the target's
// body; integration stays with the body itself.
package forces

// DefaultGravity is the fallback downward acceleration (m/s²) used by
// generators that scale friction with the normal force.
const DefaultGravity = 9.81

// minSpeed is the magnitude under which direction-dependent
// generators stand down instead of normalizing a degenerate vector.
const minSpeed = 1e-6
