/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package status defines the native status-code domain.
//
// Every native call returns a 32-bit code. Codes with the high bit
// (FailureBit) set are failures; all other values are successes. The package
// ships a table of named members mirroring the native headers and treats
// every other value as an opaque, still valid, code.
//
// One member is distinguished: GeneralError is what a failure carries when
// it is raised without a native code at hand.
package status
