// style holds the statistical description of a user's handwriting
// ([Profile]), the learner that derives it from training samples
// ([DeriveProfile]), and the emotional style mapper that perturbs
// synthesis parameters based on mood signals ([Resolve]).
//
// Profiles are values: the learner always publishes a fully-computed
// new profile instead of mutating fields of an old one in place, so
// a synthesizer holding the previous value can never observe a
// half-updated state.
package style
