// train manages the labeled handwriting samples a user provides
// while teaching the engine their style: the [SampleSet] mapping
// labels (characters, ligatures, words) to stroke variations, and
// the curriculum of labels the training flow walks through.
//
// The sample set is single-writer: the training flow mutates it, and
// everything derived from it (style profile, connection point table)
// is rebuilt as a whole when it changes, never patched incrementally.
package train
