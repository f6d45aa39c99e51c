// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements decorative widgets and simple containers:
// a shadowed Card, a speech Bubble with an arrow, a corner Marker
// badge, an isosceles Triangle indicator, a ProgressRing and a vertical
// Linear stack.
//
// The widgets hold no event state; they are configured by value and
// laid out once per frame like the layout package's types.
package widget
