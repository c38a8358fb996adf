/*
Copyright (c) Facebook, Inc. and its affiliates.

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

/*
Package platform provides access to the clocks and scheduler controls FTQ needs
from the operating system.

Everything the sampler needs from the OS goes through the Platform interface:
a monotonic nanosecond clock, a free running cycle counter, CPU pinning of the
calling thread, real-time scheduling and the descriptive text that ends up in
report headers. Linux gets a full implementation, other systems get Portable,
which measures with the Go monotonic clock and cannot pin.
*/
package platform
