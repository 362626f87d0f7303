// This file is part of Mimiki.
//
// Mimiki is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mimiki is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mimiki.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that callers are expected to branch on should be
// stored as a const string, suitably named and commented. For example:
//
//	const NoInputDevices = "no input devices found"
//
//	e := curated.Errorf(NoInputDevices)
//
//	if curated.Is(e, NoInputDevices) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(NoInputDevices)
//	f := curated.Errorf("hotkeys: %v", e)
//
//	if curated.Has(f, NoInputDevices) {
//		fmt.Println("true")
//	}
//
// Note that in this example, a call to Is() with the NoInputDevices pattern
// would fail because error f does not match that pattern - it is "wrapped"
// inside the pattern "hotkeys: %v".
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'curated' and false if the error is 'uncurated'. Alternatively, we can
// think of the difference as being 'expected' and 'unexpected' depending on
// how we choose to handle the result of the function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. The practical advantage of this is that it
// alleviates the problem of when and how to wrap errors. For example:
//
//	func main() {
//		err := A()
//		if err != nil {
//			fmt.Println(err)
//		}
//	}
//
//	func A() error {
//		err := B()
//		if err != nil {
//			return curated.Errorf("scan: %v", err)
//		}
//		return nil
//	}
//
//	func B() error {
//		err := C()
//		if err != nil {
//			return curated.Errorf("scan: %v", err)
//		}
//		return nil
//	}
//
//	func C() error {
//		return curated.Errorf("not yet implemented")
//	}
//
// This will result in the main() function printing an error message. Using
// the curated Error() function, the message will be:
//
//	scan: not yet implemented
//
// and not:
//
//	scan: scan: not yet implemented
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan). For example:
//
//	part 1: part 2: part 3
package curated
