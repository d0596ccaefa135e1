// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

// cie1931Data is the CIE 1931 2° standard observer, x̄ ȳ z̄ from 360 to 830 nm in 5 nm steps.
var cie1931Data = [...][3]float64{
	{0.0001299, 0.000003917, 0.0006061},
	{0.0002321, 0.000006965, 0.001086},
	{0.0004149, 0.00001239, 0.001946},
	{0.0007416, 0.00002202, 0.003486},
	{0.001368, 0.000039, 0.006450001},
	{0.002236, 0.000064, 0.01054999},
	{0.004243, 0.00012, 0.02005001},
	{0.00765, 0.000217, 0.03621},
	{0.01431, 0.000396, 0.06785001},
	{0.02319, 0.00064, 0.1102},
	{0.04351, 0.00121, 0.2074},
	{0.07763, 0.00218, 0.3713},
	{0.13438, 0.004, 0.6456},
	{0.21477, 0.0073, 1.0390501},
	{0.2839, 0.0116, 1.3856},
	{0.3285, 0.01684, 1.62296},
	{0.34828, 0.023, 1.74706},
	{0.34806, 0.0298, 1.7826},
	{0.3362, 0.038, 1.77211},
	{0.3187, 0.048, 1.7441},
	{0.2908, 0.06, 1.6692},
	{0.2511, 0.0739, 1.5281},
	{0.19536, 0.09098, 1.28764},
	{0.1421, 0.1126, 1.0419},
	{0.09564, 0.13902, 0.8129501},
	{0.05795001, 0.1693, 0.6162},
	{0.03201, 0.20802, 0.46518},
	{0.0147, 0.2586, 0.3533},
	{0.0049, 0.323, 0.272},
	{0.0024, 0.4073, 0.2123},
	{0.0093, 0.503, 0.1582},
	{0.0291, 0.6082, 0.1117},
	{0.06327, 0.71, 0.07824999},
	{0.1096, 0.7932, 0.05725001},
	{0.1655, 0.862, 0.04216},
	{0.2257499, 0.9148501, 0.02984},
	{0.2904, 0.954, 0.0203},
	{0.3597, 0.9803, 0.0134},
	{0.4334499, 0.9949501, 0.008749999},
	{0.5120501, 1.0, 0.005749999},
	{0.5945, 0.995, 0.0039},
	{0.6784, 0.9786, 0.002749999},
	{0.7621, 0.952, 0.0021},
	{0.8425, 0.9154, 0.0018},
	{0.9163, 0.87, 0.001650001},
	{0.9786, 0.8163, 0.0014},
	{1.0263, 0.757, 0.0011},
	{1.0567, 0.6949, 0.001},
	{1.0622, 0.631, 0.0008},
	{1.0456, 0.5668, 0.0006},
	{1.0026, 0.503, 0.00034},
	{0.9384, 0.4412, 0.00024},
	{0.8544499, 0.381, 0.00019},
	{0.7514, 0.321, 0.0001},
	{0.6424, 0.265, 5e-05},
	{0.5419, 0.217, 0.00003},
	{0.4479, 0.175, 0.00002},
	{0.3608, 0.1382, 0.00001},
	{0.2835, 0.107, 0.0},
	{0.2187, 0.0816, 0.0},
	{0.1649, 0.061, 0.0},
	{0.1212, 0.04458, 0.0},
	{0.0874, 0.032, 0.0},
	{0.0636, 0.0232, 0.0},
	{0.04677, 0.017, 0.0},
	{0.0329, 0.01192, 0.0},
	{0.0227, 0.00821, 0.0},
	{0.01584, 0.005723, 0.0},
	{0.01135916, 0.004102, 0.0},
	{0.008110916, 0.002929, 0.0},
	{0.005790346, 0.002091, 0.0},
	{0.004109457, 0.001484, 0.0},
	{0.002899327, 0.001047, 0.0},
	{0.00204919, 0.00074, 0.0},
	{0.001439971, 0.00052, 0.0},
	{0.000999949, 0.0003611, 0.0},
	{0.000690079, 0.0002492, 0.0},
	{0.000476021, 0.0001719, 0.0},
	{0.000332301, 0.00012, 0.0},
	{0.000234826, 0.0000848, 0.0},
	{0.000166151, 0.00006, 0.0},
	{0.000117413, 0.0000424, 0.0},
	{8.30753e-05, 0.00003, 0.0},
	{5.87065e-05, 0.0000212, 0.0},
	{4.15099e-05, 0.00001499, 0.0},
	{2.93533e-05, 0.0000106, 0.0},
	{2.06738e-05, 7.4657e-06, 0.0},
	{1.45598e-05, 5.2578e-06, 0.0},
	{1.0254e-05, 3.7029e-06, 0.0},
	{7.22146e-06, 2.6078e-06, 0.0},
	{5.08587e-06, 1.8366e-06, 0.0},
	{3.58165e-06, 1.2934e-06, 0.0},
	{2.52253e-06, 9.1093e-07, 0.0},
	{1.77651e-06, 6.4153e-07, 0.0},
	{1.25114e-06, 4.5181e-07, 0.0},
}

// cie1964Data is the CIE 1964 10° standard observer, x̄ ȳ z̄ from 360 to 830 nm in 5 nm steps.
var cie1964Data = [...][3]float64{
	{1.222e-07, 1.3398e-08, 5.35027e-07},
	{9.1927e-07, 1.0065e-07, 4.0283e-06},
	{5.9586e-06, 6.511e-07, 2.61437e-05},
	{0.000033266, 0.000003625, 0.00014622},
	{0.000159952, 0.000017364, 0.000704776},
	{0.00066244, 0.00007156, 0.0029278},
	{0.0023616, 0.0002534, 0.0104822},
	{0.0072423, 0.0007685, 0.032344},
	{0.0191097, 0.0020044, 0.0860109},
	{0.0434, 0.004509, 0.19712},
	{0.084736, 0.008756, 0.389366},
	{0.140638, 0.014456, 0.65676},
	{0.204492, 0.021391, 0.972542},
	{0.264737, 0.029497, 1.2825},
	{0.314679, 0.038676, 1.55348},
	{0.357719, 0.049602, 1.7985},
	{0.383734, 0.062077, 1.96728},
	{0.386726, 0.074704, 2.0273},
	{0.370702, 0.089456, 1.9948},
	{0.342957, 0.106256, 1.9007},
	{0.302273, 0.128201, 1.74537},
	{0.254085, 0.152761, 1.5549},
	{0.195618, 0.18519, 1.31756},
	{0.132349, 0.21994, 1.0302},
	{0.080507, 0.253589, 0.772125},
	{0.041072, 0.297665, 0.57006},
	{0.016172, 0.339133, 0.415254},
	{0.005132, 0.395379, 0.302356},
	{0.003816, 0.460777, 0.218502},
	{0.015444, 0.53136, 0.159249},
	{0.037465, 0.606741, 0.112044},
	{0.071358, 0.68566, 0.082248},
	{0.117749, 0.761757, 0.060709},
	{0.172953, 0.82333, 0.04305},
	{0.236491, 0.875211, 0.030451},
	{0.304213, 0.92381, 0.020584},
	{0.376772, 0.961988, 0.013676},
	{0.451584, 0.9822, 0.007918},
	{0.529826, 0.991761, 0.003988},
	{0.616053, 0.99911, 0.001091},
	{0.705224, 0.99734, 0.0},
	{0.793832, 0.98238, 0.0},
	{0.878655, 0.955552, 0.0},
	{0.951162, 0.915175, 0.0},
	{1.01416, 0.868934, 0.0},
	{1.0743, 0.825623, 0.0},
	{1.11852, 0.777405, 0.0},
	{1.1343, 0.720353, 0.0},
	{1.12399, 0.658341, 0.0},
	{1.0891, 0.593878, 0.0},
	{1.03048, 0.527963, 0.0},
	{0.95074, 0.461834, 0.0},
	{0.856297, 0.398057, 0.0},
	{0.75493, 0.339554, 0.0},
	{0.647467, 0.283493, 0.0},
	{0.53511, 0.228254, 0.0},
	{0.431567, 0.179828, 0.0},
	{0.34369, 0.140211, 0.0},
	{0.268329, 0.107633, 0.0},
	{0.2043, 0.081187, 0.0},
	{0.152568, 0.060281, 0.0},
	{0.11221, 0.044096, 0.0},
	{0.0812606, 0.0318004, 0.0},
	{0.05793, 0.0226017, 0.0},
	{0.0408508, 0.0159051, 0.0},
	{0.028623, 0.0111303, 0.0},
	{0.0199413, 0.0077488, 0.0},
	{0.013842, 0.0053751, 0.0},
	{0.00957688, 0.00371774, 0.0},
	{0.0066052, 0.00256456, 0.0},
	{0.00455263, 0.00176847, 0.0},
	{0.0031447, 0.00122239, 0.0},
	{0.00217496, 0.00084619, 0.0},
	{0.0015057, 0.00058644, 0.0},
	{0.00104476, 0.00040741, 0.0},
	{0.00072745, 0.000284041, 0.0},
	{0.000508258, 0.00019873, 0.0},
	{0.00035638, 0.00013955, 0.0},
	{0.000250969, 0.000098428, 0.0},
	{0.00017773, 0.000069819, 0.0},
	{0.00012639, 0.000049737, 0.0},
	{0.000090151, 3.55405e-05, 0.0},
	{6.45258e-05, 0.000025486, 0.0},
	{0.000046339, 1.83384e-05, 0.0},
	{3.34117e-05, 0.000013249, 0.0},
	{0.000024209, 9.6196e-06, 0.0},
	{1.76115e-05, 7.0128e-06, 0.0},
	{0.000012855, 5.1298e-06, 0.0},
	{9.41363e-06, 3.76473e-06, 0.0},
	{0.000006913, 2.77081e-06, 0.0},
	{5.09347e-06, 2.04613e-06, 0.0},
	{3.7671e-06, 1.51677e-06, 0.0},
	{2.79531e-06, 1.12809e-06, 0.0},
	{0.000002082, 8.4216e-07, 0.0},
	{1.55314e-06, 6.297e-07, 0.0},
}

// daylightData holds the CIE daylight basis functions S0, S1, S2 from 300 to 830 nm in 5 nm steps (CIE 15:2004).
var daylightData = [...][3]float64{
	{0.04, 0.02, 0.0},
	{3.02, 2.26, 1.0},
	{6.0, 4.5, 2.0},
	{17.8, 13.45, 3.0},
	{29.6, 22.4, 4.0},
	{42.45, 32.2, 6.25},
	{55.3, 42.0, 8.5},
	{56.3, 41.3, 8.15},
	{57.3, 40.6, 7.8},
	{59.55, 41.1, 7.25},
	{61.8, 41.6, 6.7},
	{61.65, 39.8, 6.0},
	{61.5, 38.0, 5.3},
	{65.15, 40.2, 5.7},
	{68.8, 42.4, 6.1},
	{66.1, 40.45, 4.55},
	{63.4, 38.5, 3.0},
	{64.6, 36.75, 2.1},
	{65.8, 35.0, 1.2},
	{80.3, 39.2, 0.05},
	{94.8, 43.4, -1.1},
	{99.8, 44.85, -0.8},
	{104.8, 46.3, -0.5},
	{105.35, 45.1, -0.6},
	{105.9, 43.9, -0.7},
	{101.35, 40.5, -0.95},
	{96.8, 37.1, -1.2},
	{105.35, 36.9, -1.9},
	{113.9, 36.7, -2.6},
	{119.75, 36.3, -2.75},
	{125.6, 35.9, -2.9},
	{125.55, 34.25, -2.85},
	{125.5, 32.6, -2.8},
	{123.4, 30.25, -2.7},
	{121.3, 27.9, -2.6},
	{121.3, 26.1, -2.6},
	{121.3, 24.3, -2.6},
	{117.4, 22.2, -2.2},
	{113.5, 20.1, -1.8},
	{113.3, 18.15, -1.65},
	{113.1, 16.2, -1.5},
	{111.95, 14.7, -1.4},
	{110.8, 13.2, -1.3},
	{108.65, 10.9, -1.25},
	{106.5, 8.6, -1.2},
	{107.65, 7.35, -1.1},
	{108.8, 6.1, -1.0},
	{107.05, 5.15, -0.75},
	{105.3, 4.2, -0.5},
	{104.85, 3.05, -0.4},
	{104.4, 1.9, -0.3},
	{102.2, 0.95, -0.15},
	{100.0, 0.0, 0.0},
	{98.0, -0.8, 0.1},
	{96.0, -1.6, 0.2},
	{95.55, -2.55, 0.35},
	{95.1, -3.5, 0.5},
	{92.1, -3.5, 1.3},
	{89.1, -3.5, 2.1},
	{89.8, -4.65, 2.65},
	{90.5, -5.8, 3.2},
	{90.4, -6.5, 3.65},
	{90.3, -7.2, 4.1},
	{89.35, -7.9, 4.4},
	{88.4, -8.6, 4.7},
	{86.2, -9.05, 4.9},
	{84.0, -9.5, 5.1},
	{84.55, -10.2, 5.9},
	{85.1, -10.9, 6.7},
	{83.5, -10.8, 7.0},
	{81.9, -10.7, 7.3},
	{82.25, -11.35, 7.95},
	{82.6, -12.0, 8.6},
	{83.75, -13.0, 9.2},
	{84.9, -14.0, 9.8},
	{83.1, -13.8, 10.0},
	{81.3, -13.6, 10.2},
	{76.6, -12.8, 9.25},
	{71.9, -12.0, 8.3},
	{73.1, -12.65, 8.95},
	{74.3, -13.3, 9.6},
	{75.35, -13.1, 9.05},
	{76.4, -12.9, 8.5},
	{69.85, -11.75, 7.75},
	{63.3, -10.6, 7.0},
	{67.5, -11.1, 7.3},
	{71.7, -11.6, 7.6},
	{74.35, -11.9, 7.8},
	{77.0, -12.2, 8.0},
	{71.1, -11.2, 7.35},
	{65.2, -10.2, 6.7},
	{56.45, -9.0, 5.95},
	{47.7, -7.8, 5.2},
	{58.15, -9.5, 6.3},
	{68.6, -11.2, 7.4},
	{66.8, -10.8, 7.1},
	{65.0, -10.4, 6.8},
	{65.5, -10.5, 6.9},
	{66.0, -10.6, 7.0},
	{63.5, -10.15, 6.7},
	{61.0, -9.7, 6.4},
	{57.15, -9.0, 5.95},
	{53.3, -8.3, 5.5},
	{56.1, -8.8, 5.8},
	{58.9, -9.3, 6.1},
	{60.4, -9.55, 6.3},
	{61.9, -9.8, 6.5},
}

// f2Data is the relative spectral power of CIE illuminant F2,
// 380-780 nm at 5 nm.
var f2Data = [...]float64{
	1.18, 1.48, 1.84, 2.15, 3.44, 15.69, 3.85, 3.74, 4.19,
	4.62, 5.06, 34.98, 11.81, 6.27, 6.63, 6.93, 7.19, 7.4,
	7.54, 7.62, 7.65, 7.62, 7.62, 7.45, 7.28, 7.15, 7.05,
	7.04, 7.16, 7.47, 8.04, 8.88, 10.01, 24.88, 16.64, 14.59,
	16.16, 17.56, 18.62, 21.47, 22.79, 19.29, 18.66, 17.73, 16.54,
	15.21, 13.8, 12.36, 10.95, 9.65, 8.4, 7.32, 6.31, 5.43,
	4.68, 4.02, 3.45, 2.96, 2.55, 2.19, 1.89, 1.64, 1.53,
	1.27, 1.1, 0.99, 0.88, 0.76, 0.68, 0.61, 0.56, 0.54,
	0.51, 0.47, 0.47, 0.43, 0.46, 0.47, 0.4, 0.33, 0.27,
}
