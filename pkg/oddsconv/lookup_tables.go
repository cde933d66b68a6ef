package oddsconv

import (
	"sync"

	"github.com/shopspring/decimal"
)

// fraction is a (numerator, denominator) table value.
type fraction struct {
	num, den uint32
}

type decimalEntry struct {
	key   string
	value fraction
}

type americanFractionEntry struct {
	key   int32
	value fraction
}

type americanDecimalEntry struct {
	key   int32
	value string
}

// decimalKey canonicalizes d so that numerically equal decimals share a key
// (1.0010 and 1.001 both map to "1.001").
func decimalKey(d decimal.Decimal) string {
	return d.String()
}

func buildDecimalTable(entries []decimalEntry) map[string]fraction {
	m := make(map[string]fraction, len(entries))
	for _, e := range entries {
		m[decimalKey(decimal.RequireFromString(e.key))] = e.value
	}
	return m
}

func buildAmericanFractionTable(entries []americanFractionEntry) map[int32]fraction {
	m := make(map[int32]fraction, len(entries))
	for _, e := range entries {
		m[e.key] = e.value
	}
	return m
}

func buildAmericanDecimalTable(entries []americanDecimalEntry) map[int32]decimal.Decimal {
	m := make(map[int32]decimal.Decimal, len(entries))
	for _, e := range entries {
		m[e.key] = decimal.RequireFromString(e.value)
	}
	return m
}

// Tables are built on first use and never modified afterwards.
var (
	decimalToFractionTable = sync.OnceValue(func() map[string]fraction {
		return buildDecimalTable(decimalToFractionEntries)
	})
	decimalToFractionExtendedTable = sync.OnceValue(func() map[string]fraction {
		return buildDecimalTable(decimalToFractionExtendedEntries)
	})
	americanToFractionTable = sync.OnceValue(func() map[int32]fraction {
		return buildAmericanFractionTable(americanToFractionEntries)
	})
	americanToFractionExtendedTable = sync.OnceValue(func() map[int32]fraction {
		return buildAmericanFractionTable(nil)
	})
	americanToDecimalTable = sync.OnceValue(func() map[int32]decimal.Decimal {
		return buildAmericanDecimalTable(americanToDecimalEntries)
	})
	// TODO: curate extended american -> decimal entries alongside the extended fraction table.
	americanToDecimalExtendedTable = sync.OnceValue(func() map[int32]decimal.Decimal {
		return buildAmericanDecimalTable(nil)
	})
)

var decimalToFractionEntries = []decimalEntry{
	{"1.01", fraction{1, 100}}, {"1.2", fraction{1, 5}}, {"1.22", fraction{2, 9}},
	{"1.25", fraction{1, 4}}, {"1.29", fraction{2, 7}}, {"1.3", fraction{3, 10}},
	{"1.33", fraction{1, 3}}, {"1.36", fraction{4, 11}}, {"1.4", fraction{2, 5}},
	{"1.44", fraction{4, 9}}, {"1.5", fraction{1, 2}}, {"1.53", fraction{8, 15}},
	{"1.57", fraction{4, 7}}, {"1.62", fraction{8, 13}}, {"1.67", fraction{4, 6}},
	{"1.73", fraction{8, 11}}, {"1.8", fraction{4, 5}}, {"1.83", fraction{5, 6}},
	{"1.91", fraction{10, 11}}, {"2", fraction{1, 1}}, {"2.05", fraction{21, 20}},
	{"2.1", fraction{11, 10}}, {"2.15", fraction{23, 20}}, {"2.2", fraction{6, 5}},
	{"2.25", fraction{5, 4}}, {"2.38", fraction{11, 8}}, {"2.4", fraction{7, 5}},
	{"2.5", fraction{6, 4}}, {"2.6", fraction{8, 5}}, {"2.62", fraction{13, 8}},
	{"2.75", fraction{7, 4}}, {"2.8", fraction{9, 5}}, {"2.88", fraction{15, 8}},
	{"3", fraction{2, 1}}, {"3.2", fraction{11, 5}}, {"3.25", fraction{9, 4}},
	{"3.4", fraction{12, 5}}, {"3.5", fraction{5, 2}}, {"3.6", fraction{13, 5}},
	{"3.75", fraction{11, 4}}, {"4", fraction{3, 1}}, {"4.2", fraction{16, 5}},
	{"4.33", fraction{10, 3}}, {"4.5", fraction{7, 2}}, {"5", fraction{4, 1}},
	{"5.5", fraction{9, 2}}, {"6", fraction{5, 1}}, {"6.5", fraction{11, 2}},
	{"7", fraction{6, 1}}, {"7.5", fraction{13, 2}}, {"8", fraction{7, 1}},
	{"8.5", fraction{15, 2}}, {"9", fraction{8, 1}}, {"10", fraction{9, 1}},
	{"11", fraction{10, 1}}, {"12", fraction{11, 1}}, {"13", fraction{12, 1}},
	{"14", fraction{13, 1}}, {"15", fraction{14, 1}}, {"16", fraction{15, 1}},
	{"17", fraction{16, 1}}, {"19", fraction{18, 1}}, {"21", fraction{20, 1}},
	{"26", fraction{25, 1}}, {"34", fraction{33, 1}}, {"51", fraction{50, 1}},
	{"67", fraction{66, 1}}, {"101", fraction{100, 1}}, {"1001", fraction{1000, 1}},
}

// Extended entries trade accuracy for rounder fractions.
var decimalToFractionExtendedEntries = []decimalEntry{
	{"1.001", fraction{1, 1000}}, {"1.0013", fraction{1, 750}}, {"1.002", fraction{1, 500}},
	{"1.0025", fraction{1, 400}}, {"1.003", fraction{1, 300}}, {"1.004", fraction{1, 250}},
	{"1.005", fraction{1, 200}}, {"1.007", fraction{1, 150}}, {"1.012", fraction{1, 80}},
	{"1.015", fraction{1, 66}}, {"1.02", fraction{1, 50}}, {"1.025", fraction{1, 40}},
	{"1.03", fraction{1, 33}}, {"1.04", fraction{1, 25}}, {"1.05", fraction{1, 20}},
	{"1.055", fraction{1, 18}}, {"1.06", fraction{1, 16}}, {"1.07", fraction{1, 14}},
	{"1.08", fraction{1, 12}}, {"1.09", fraction{1, 11}}, {"1.1", fraction{1, 10}},
	{"1.11", fraction{1, 9}}, {"1.12", fraction{1, 8}}, {"1.13", fraction{2, 15}},
	{"1.14", fraction{1, 7}}, {"1.15", fraction{2, 13}}, {"1.16", fraction{1, 6}},
	{"1.18", fraction{2, 11}}, {"1.19", fraction{19, 100}}, {"1.21", fraction{21, 100}},
	{"1.23", fraction{23, 100}}, {"1.24", fraction{6, 25}}, {"1.26", fraction{13, 50}},
	{"1.27", fraction{27, 100}}, {"1.31", fraction{31, 100}}, {"1.32", fraction{8, 25}},
	{"1.34", fraction{17, 50}}, {"1.35", fraction{7, 20}}, {"1.37", fraction{37, 100}},
	{"1.38", fraction{19, 50}}, {"1.39", fraction{39, 100}}, {"1.41", fraction{41, 100}},
	{"1.42", fraction{21, 50}}, {"1.43", fraction{43, 100}}, {"1.45", fraction{9, 20}},
	{"1.46", fraction{23, 50}}, {"1.47", fraction{40, 85}}, {"1.48", fraction{12, 25}},
	{"1.49", fraction{49, 100}}, {"1.51", fraction{51, 100}}, {"1.52", fraction{13, 25}},
	{"1.54", fraction{27, 50}}, {"1.55", fraction{11, 20}}, {"1.56", fraction{14, 25}},
	{"1.58", fraction{29, 50}}, {"1.59", fraction{59, 100}}, {"1.6", fraction{3, 5}},
	{"1.61", fraction{8, 13}}, {"1.63", fraction{63, 100}}, {"1.64", fraction{16, 25}},
	{"1.65", fraction{13, 20}}, {"1.66", fraction{4, 6}}, {"1.68", fraction{34, 50}},
	{"1.69", fraction{69, 100}}, {"1.7", fraction{7, 10}}, {"1.71", fraction{71, 100}},
	{"1.72", fraction{8, 11}}, {"1.74", fraction{37, 50}}, {"1.75", fraction{3, 4}},
	{"1.76", fraction{19, 25}}, {"1.77", fraction{77, 100}}, {"1.78", fraction{39, 50}},
	{"1.79", fraction{79, 100}}, {"1.81", fraction{81, 100}}, {"1.82", fraction{41, 50}},
	{"1.84", fraction{21, 25}}, {"1.85", fraction{17, 20}}, {"1.86", fraction{20, 23}},
	{"1.87", fraction{87, 100}}, {"1.88", fraction{22, 25}}, {"1.89", fraction{89, 100}},
	{"1.9", fraction{9, 10}}, {"1.92", fraction{23, 25}}, {"1.93", fraction{93, 100}},
	{"1.94", fraction{47, 50}}, {"1.95", fraction{20, 21}}, {"1.96", fraction{24, 25}},
	{"1.97", fraction{97, 100}}, {"1.98", fraction{49, 50}}, {"1.99", fraction{99, 100}},
	{"2.01", fraction{101, 100}}, {"2.02", fraction{51, 50}}, {"2.03", fraction{103, 100}},
	{"2.04", fraction{26, 25}}, {"2.06", fraction{53, 50}}, {"2.07", fraction{107, 100}},
	{"2.08", fraction{27, 25}}, {"2.09", fraction{109, 100}}, {"2.11", fraction{111, 100}},
	{"2.12", fraction{28, 25}}, {"2.13", fraction{113, 100}}, {"2.14", fraction{57, 50}},
	{"2.16", fraction{29, 25}}, {"2.17", fraction{117, 100}}, {"2.18", fraction{59, 50}},
	{"2.19", fraction{119, 100}}, {"2.21", fraction{121, 100}}, {"2.22", fraction{61, 50}},
	{"2.23", fraction{123, 100}}, {"2.24", fraction{31, 25}}, {"2.26", fraction{63, 50}},
	{"2.27", fraction{127, 100}}, {"2.28", fraction{32, 25}}, {"2.3", fraction{13, 10}},
	{"2.32", fraction{33, 25}}, {"2.34", fraction{67, 50}}, {"2.35", fraction{27, 20}},
	{"2.36", fraction{34, 25}}, {"2.37", fraction{11, 8}}, {"2.42", fraction{71, 50}},
	{"2.44", fraction{36, 25}}, {"2.45", fraction{29, 20}}, {"2.46", fraction{73, 50}},
	{"2.48", fraction{37, 25}}, {"2.52", fraction{38, 25}}, {"2.54", fraction{77, 50}},
	{"2.56", fraction{39, 25}}, {"2.58", fraction{79, 50}}, {"2.64", fraction{41, 25}},
	{"2.66", fraction{83, 50}}, {"2.68", fraction{42, 25}}, {"2.7", fraction{17, 10}},
	{"2.72", fraction{43, 25}}, {"2.74", fraction{87, 50}}, {"2.76", fraction{44, 25}},
	{"2.78", fraction{89, 50}}, {"2.82", fraction{91, 50}}, {"2.84", fraction{46, 25}},
	{"2.86", fraction{93, 50}}, {"2.87", fraction{15, 8}}, {"2.9", fraction{19, 10}},
	{"2.92", fraction{48, 25}}, {"2.94", fraction{97, 50}}, {"2.96", fraction{49, 25}},
	{"2.98", fraction{99, 50}}, {"3.05", fraction{41, 20}}, {"3.1", fraction{21, 10}},
	{"3.125", fraction{85, 40}}, {"3.15", fraction{43, 20}}, {"3.3", fraction{23, 10}},
	{"3.35", fraction{47, 20}}, {"3.45", fraction{49, 20}}, {"3.55", fraction{51, 20}},
	{"3.65", fraction{53, 20}}, {"3.7", fraction{27, 10}}, {"3.8", fraction{14, 5}},
	{"3.85", fraction{57, 20}}, {"3.95", fraction{59, 20}}, {"4.05", fraction{61, 20}},
	{"4.1", fraction{31, 10}}, {"4.15", fraction{63, 20}}, {"4.25", fraction{13, 4}},
	{"4.3", fraction{33, 10}}, {"4.35", fraction{67, 20}}, {"4.4", fraction{17, 5}},
	{"4.45", fraction{69, 20}}, {"4.55", fraction{71, 20}}, {"4.6", fraction{18, 5}},
	{"4.65", fraction{73, 20}}, {"4.7", fraction{37, 10}}, {"4.75", fraction{15, 4}},
	{"4.8", fraction{19, 5}}, {"4.85", fraction{77, 20}}, {"4.9", fraction{39, 10}},
	{"4.95", fraction{79, 20}}, {"5.1", fraction{41, 10}}, {"5.2", fraction{21, 5}},
	{"5.3", fraction{43, 10}}, {"5.4", fraction{22, 5}}, {"5.6", fraction{23, 5}},
	{"5.7", fraction{47, 10}}, {"5.8", fraction{24, 5}}, {"5.9", fraction{49, 10}},
	{"6.2", fraction{26, 5}}, {"6.4", fraction{27, 5}}, {"6.6", fraction{28, 5}},
	{"6.8", fraction{29, 5}}, {"7.2", fraction{31, 5}}, {"7.4", fraction{32, 5}},
	{"7.6", fraction{33, 5}}, {"7.8", fraction{34, 5}}, {"8.2", fraction{36, 5}},
	{"8.4", fraction{37, 5}}, {"8.6", fraction{38, 5}}, {"8.8", fraction{39, 5}},
	{"9.2", fraction{41, 5}}, {"9.4", fraction{42, 5}}, {"9.5", fraction{17, 2}},
	{"9.6", fraction{43, 5}}, {"9.8", fraction{44, 5}}, {"23", fraction{22, 1}},
	{"29", fraction{28, 1}}, {"31", fraction{30, 1}}, {"36", fraction{35, 1}},
	{"41", fraction{40, 1}}, {"46", fraction{45, 1}}, {"56", fraction{55, 1}},
	{"61", fraction{60, 1}}, {"71", fraction{70, 1}}, {"76", fraction{75, 1}},
	{"81", fraction{80, 1}}, {"86", fraction{85, 1}}, {"91", fraction{90, 1}},
	{"96", fraction{95, 1}}, {"111", fraction{110, 1}}, {"121", fraction{120, 1}},
	{"126", fraction{125, 1}}, {"131", fraction{130, 1}}, {"141", fraction{140, 1}},
	{"151", fraction{150, 1}}, {"176", fraction{175, 1}}, {"201", fraction{200, 1}},
	{"226", fraction{225, 1}}, {"251", fraction{250, 1}}, {"276", fraction{275, 1}},
	{"301", fraction{300, 1}}, {"401", fraction{400, 1}}, {"501", fraction{500, 1}},
}

// Favourites follow UK quoting, e.g. -150 is 4/6 rather than 2/3.
var americanToFractionEntries = []americanFractionEntry{
	{-10000, fraction{1, 100}}, {-500, fraction{1, 5}}, {-450, fraction{2, 9}}, {-400, fraction{1, 4}},
	{-350, fraction{2, 7}}, {-333, fraction{3, 10}}, {-300, fraction{1, 3}}, {-275, fraction{4, 11}},
	{-250, fraction{2, 5}}, {-225, fraction{4, 9}}, {-200, fraction{1, 2}}, {-188, fraction{8, 15}},
	{-175, fraction{4, 7}}, {-163, fraction{8, 13}}, {-150, fraction{4, 6}}, {-138, fraction{8, 11}},
	{-125, fraction{4, 5}}, {-120, fraction{5, 6}}, {-110, fraction{10, 11}}, {100, fraction{1, 1}},
	{105, fraction{21, 20}}, {110, fraction{11, 10}}, {115, fraction{23, 20}}, {120, fraction{6, 5}},
	{125, fraction{5, 4}}, {138, fraction{11, 8}}, {140, fraction{7, 5}}, {150, fraction{6, 4}},
	{160, fraction{8, 5}}, {163, fraction{13, 8}}, {175, fraction{7, 4}}, {180, fraction{9, 5}},
	{188, fraction{15, 8}}, {200, fraction{2, 1}}, {220, fraction{11, 5}}, {225, fraction{9, 4}},
	{240, fraction{12, 5}}, {250, fraction{5, 2}}, {260, fraction{13, 5}}, {275, fraction{11, 4}},
	{300, fraction{3, 1}}, {320, fraction{16, 5}}, {333, fraction{10, 3}}, {350, fraction{7, 2}},
	{400, fraction{4, 1}}, {450, fraction{9, 2}}, {500, fraction{5, 1}}, {550, fraction{11, 2}},
	{600, fraction{6, 1}}, {650, fraction{13, 2}}, {700, fraction{7, 1}}, {750, fraction{15, 2}},
	{800, fraction{8, 1}}, {900, fraction{9, 1}}, {1000, fraction{10, 1}}, {1100, fraction{11, 1}},
	{1200, fraction{12, 1}}, {1300, fraction{13, 1}}, {1400, fraction{14, 1}}, {1500, fraction{15, 1}},
	{1600, fraction{16, 1}}, {1800, fraction{18, 1}}, {2000, fraction{20, 1}}, {2500, fraction{25, 1}},
	{3300, fraction{33, 1}}, {5000, fraction{50, 1}}, {6600, fraction{66, 1}}, {10000, fraction{100, 1}},
	{100000, fraction{1000, 1}},
}

var americanToDecimalEntries = []americanDecimalEntry{
	{-10000, "1.01"}, {-500, "1.2"}, {-450, "1.22"}, {-400, "1.25"}, {-350, "1.29"},
	{-333, "1.3"}, {-300, "1.33"}, {-275, "1.36"}, {-250, "1.4"}, {-225, "1.44"},
	{-200, "1.5"}, {-188, "1.53"}, {-175, "1.57"}, {-163, "1.62"}, {-150, "1.67"},
	{-138, "1.73"}, {-125, "1.8"}, {-120, "1.83"}, {-110, "1.91"}, {100, "2"},
	{105, "2.05"}, {110, "2.1"}, {115, "2.15"}, {120, "2.2"}, {125, "2.25"},
	{138, "2.38"}, {140, "2.4"}, {150, "2.5"}, {160, "2.6"}, {163, "2.62"},
	{175, "2.75"}, {180, "2.8"}, {188, "2.88"}, {200, "3"}, {220, "3.2"},
	{225, "3.25"}, {240, "3.4"}, {250, "3.5"}, {260, "3.6"}, {275, "3.75"},
	{300, "4"}, {320, "4.2"}, {333, "4.33"}, {350, "4.5"}, {400, "5"},
	{450, "5.5"}, {500, "6"}, {550, "6.5"}, {600, "7"}, {650, "7.5"},
	{700, "8"}, {750, "8.5"}, {800, "9"}, {900, "10"}, {1000, "11"},
	{1100, "12"}, {1200, "13"}, {1300, "14"}, {1400, "15"}, {1500, "16"},
	{1600, "17"}, {1800, "19"}, {2000, "21"}, {2500, "26"}, {3300, "34"},
	{5000, "51"}, {6600, "67"}, {10000, "101"}, {100000, "1001"},
}
