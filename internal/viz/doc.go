// Package viz renders charge configurations and their field maps in the
// terminal.
//
// Stateless views cover the display modes:
//
//   - [HeatView]: potential plane as background-colored cells with charge
//     markers and optional field-direction arrows
//   - [StreamView]: electric field lines traced by [StreamTracer] onto a
//     braille [Canvas]
//   - [ContourView]: equipotential isolines on a braille [Canvas]
//   - [SurfaceView]: the potential surface as a rotating 3D wireframe
//
// Potential values map onto a diverging palette through [PotentialColor];
// charge markers use red for positive and blue for negative. [SetTheme]
// selects the palette hues, blue-white-red by default.
package viz
