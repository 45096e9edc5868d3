// SPDX-License-Identifier: GPL-3.0-or-later

package leakyrelu

// Unit is the input of a [Func] that needs no argument, such as the
// one returned by [NewCollectionSourceFunc].
type Unit struct{}
