/*
Package l99 implements list exercises over [list.List] by structural recursion.

The operations are:

  - Last: the final element.

  - LastButOne: the second-to-last element.

  - Kth: the element at a 0-based position.

  - Length: the number of elements.

  - Reverse: a new list with the elements in reverse order.

Last, LastButOne and Kth report a missing element as an empty [Option] rather
than an error. None of the operations modify their input.
*/
package l99
