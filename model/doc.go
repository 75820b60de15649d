// Package model defines core types used throughout dynoq.
//
// # Identity Types
//
//   - EntryKey: Composite key (year, make, model) identifying a dyno-test subject
//   - Attribute: Closed set of tracked performance attributes (HP, Torque, AFR, Boost)
//
// # Data Types
//
//   - Record: One (attribute, value, RPM) sample belonging to an entry
//   - Sample: A recorded value with the RPM it was recorded at
//   - ExtremePair: Minimum and maximum Sample for one attribute of one entry
package model
