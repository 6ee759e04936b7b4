// Package field implements the directional tensor field the street
// network is traced from.
//
// What:
//
//   - Tensor: doubled-angle encoding of an undirected (π-periodic) line
//     element; major/minor eigendirections, weighted accumulation,
//     rotation.
//   - BasisField: closed Grid|Radial variants producing a weighted Tensor
//     at a query point, with centre/size/decay (and theta for Grid).
//   - TensorField: ordered basis-field list + noise parameters + land-mask
//     polygons; samples one combined Tensor per point.
//
// Why:
//
//   - Streamlines follow the major or minor eigendirection of this field;
//     everything downstream (graph, blocks) derives from those traces.
//
// Sampling rules:
//
//   - Points in the sea (or river, unless ignored) sample as the zero
//     tensor, the "no direction here" sentinel integrators stop on.
//   - With no basis fields the field is a degenerate uniform grid
//     (unit tensor, zero matrix).
//   - Park polygons add a rotational perturbation from spatially coherent
//     simplex noise; global noise adds a second independent one. Noise is
//     a deterministic function of position, so nearby points stay
//     correlated.
//
// Options:
//
//   - WithSeed(seed): noise seed; seed==0 uses a fixed default, never time.
//   - WithSmoothing(): renormalized (smooth) tensor accumulation.
//
// Complexity: SamplePoint is O(b + m) for b basis fields and m land-mask
// vertices; Tensor ops are O(1).
package field
