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

// Package apis defines the small Go-level contracts of daqerr.
//
// Generic code (log adapters, boundary helpers, tools) should depend on these
// interfaces rather than on the concrete *daqerr.Failure, so that other error
// types classified by native status codes can take part.
//
// This package must remain lightweight: interfaces only.
package apis
