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
Package ftq implements the Fixed Time Quantum sampler.

Every measurement thread repeats a tiny fixed unit of work and counts how many
units fit into successive quanta of equal length, measured with the cycle
counter. A quantum in which the OS interrupted the thread ends with a lower
count. The per-quantum counts are stored in a preallocated Buffer which is
split into one slice per thread, so no locking is needed while measuring.

Threads are started together through a Gate, which is opened by Sampler.Run
once every thread is pinned and ready.
*/
package ftq
