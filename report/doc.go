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
Package report writes FTQ samples out once measurement is over.

Each thread's samples become lines of "<ns since first sample> <count>",
preceded by a self describing header of '#' comments: sampling frequency,
calibration factor, octave hints and the machine description.
Run metrics can also be written in prometheus text format for the node exporter
textfile collector, and a diagnostics table can be printed for the operator.
*/
package report
