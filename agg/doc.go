/*
Package agg provides keys and value aggregations for ordered aggregate trees.

A tree needs a three-way comparison for its keys and a monoid for its
values. This package offers comparisons for ordered Go types and a couple of
pre-manufactured monoids:

  - Sum adds numbers of any integer or floating point type,
  - StatsMonoid tracks count, sum, minimum and maximum of observations,
  - BigSum adds arbitrary precision integers, with deep copies.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package agg
