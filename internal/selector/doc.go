// Package selector builds the set of selectors used by the submodular
// width computation: a selector picks one bag from each tree
// decomposition, represented only as the resulting set of bags rather
// than the source-TD assignment.
//
// Two distinct prunes keep the construction tractable:
//
//   - the bag-level filter, applied within one selector, drops any bag
//     that strictly contains another bag of the same selector (a
//     superset bag can only weaken the SUBW min, so it is redundant);
//   - selector-level subsumption, applied across selectors after each
//     incremental extension, drops a selector whose every "obligation"
//     is already met by a more demanding selector.
//
// Both prunes are required: dropping the bag filter blows up the
// selector count combinatorially; dropping selector-level subsumption
// leaves working sets that are too large to carry through the LP stage.
package selector
