package cosem

// Unit is a COSEM physical-unit code (IEC 62056-62 clause 7.3).
type Unit byte

// Unit codes from the IEC 62056-62 unit table.
const (
	UnitYear                     Unit = 1
	UnitMonth                    Unit = 2
	UnitWeek                     Unit = 3
	UnitDay                      Unit = 4
	UnitHour                     Unit = 5
	UnitMinute                   Unit = 6
	UnitSecond                   Unit = 7
	UnitDegree                   Unit = 8
	UnitDegreeCelsius            Unit = 9
	UnitCurrency                 Unit = 10
	UnitMeter                    Unit = 11
	UnitMeterPerSecond           Unit = 12
	UnitCubicMeter               Unit = 13
	UnitCubicMeterCorrected      Unit = 14
	UnitCubicMeterPerHour        Unit = 15
	UnitCubicMeterPerHourCorr    Unit = 16
	UnitCubicMeterPerDay         Unit = 17
	UnitCubicMeterPerDayCorr     Unit = 18
	UnitLiter                    Unit = 19
	UnitKilogramm                Unit = 20
	UnitNewton                   Unit = 21
	UnitNewtonmeter              Unit = 22
	UnitPascal                   Unit = 23
	UnitBar                      Unit = 24
	UnitJoule                    Unit = 25
	UnitJoulePerHour             Unit = 26
	UnitWatt                     Unit = 27
	UnitVoltAmpere               Unit = 28
	UnitVar                      Unit = 29
	UnitWattHour                 Unit = 30
	UnitVoltAmpereHour           Unit = 31
	UnitVarHour                  Unit = 32
	UnitAmpere                   Unit = 33
	UnitCoulomb                  Unit = 34
	UnitVolt                     Unit = 35
	UnitVoltPerMeter             Unit = 36
	UnitFarad                    Unit = 37
	UnitOhm                      Unit = 38
	UnitOhmMeter                 Unit = 39
	UnitWeber                    Unit = 40
	UnitTesla                    Unit = 41
	UnitAmperePerMeter           Unit = 42
	UnitHenry                    Unit = 43
	UnitHertz                    Unit = 44
	UnitInverseWattHour          Unit = 45
	UnitInverseVarHour           Unit = 46
	UnitInverseVoltAmpereHour    Unit = 47
	UnitVoltSquaredHour          Unit = 48
	UnitAmpereSquaredHour        Unit = 49
	UnitKilogrammPerSecond       Unit = 50
	UnitSiemens                  Unit = 51
	UnitKelvin                   Unit = 52
	UnitInverseVoltSquaredHour   Unit = 53
	UnitInverseAmpereSquaredHour Unit = 54
	UnitInverseCubicMeter        Unit = 55
	UnitPercent                  Unit = 56
	UnitAmpereHour               Unit = 57
	UnitWattHourPerCubicMeter    Unit = 60
	UnitJoulePerCubicMeter       Unit = 61
	UnitMolePercent              Unit = 62
	UnitGrammPerCubicMeter       Unit = 63
	UnitPascalSecond             Unit = 64
	UnitJoulePerKilogramm        Unit = 65
	UnitGramPerSquareCentimeter  Unit = 66
	UnitAtmosphere               Unit = 67
	UnitDezibelMilliwatt         Unit = 70
	UnitDezibelMicrovolt         Unit = 71
	UnitDezibel                  Unit = 72
)

// unitSuffixes gives the printable suffix for each known unit code. 58-59,
// 68-69, 73-252 are reserved gaps in the published table and tag 253 (the
// extended unit table) is out of scope; codes 254 (Other)
// and 255 (Count) carry no printable suffix. Any code not present here is
// unknown and LookupUnit reports ok=false.
var unitSuffixes = map[Unit]string{
	UnitYear: "a", UnitMonth: "mo", UnitWeek: "wk", UnitDay: "d", UnitHour: "h",
	UnitMinute: "min", UnitSecond: "s", UnitDegree: "°", UnitDegreeCelsius: "°C",
	UnitCurrency: "currency", UnitMeter: "m", UnitMeterPerSecond: "m/s",
	UnitCubicMeter: "m³", UnitCubicMeterCorrected: "m³", UnitCubicMeterPerHour: "m³/h",
	UnitCubicMeterPerHourCorr: "m³/h", UnitCubicMeterPerDay: "m³/d", UnitCubicMeterPerDayCorr: "m³/d",
	UnitLiter: "l", UnitKilogramm: "kg", UnitNewton: "N", UnitNewtonmeter: "Nm",
	UnitPascal: "Pa", UnitBar: "bar", UnitJoule: "J", UnitJoulePerHour: "J/h",
	UnitWatt: "W", UnitVoltAmpere: "VA", UnitVar: "var", UnitWattHour: "Wh",
	UnitVoltAmpereHour: "VAh", UnitVarHour: "varh", UnitAmpere: "A", UnitCoulomb: "C",
	UnitVolt: "V", UnitVoltPerMeter: "V/m", UnitFarad: "F", UnitOhm: "Ω",
	UnitOhmMeter: "Ωm", UnitWeber: "Wb", UnitTesla: "T", UnitAmperePerMeter: "A/m",
	UnitHenry: "H", UnitHertz: "Hz", UnitInverseWattHour: "1/(Wh)",
	UnitInverseVarHour: "1/(varh)", UnitInverseVoltAmpereHour: "1/(VAh)",
	UnitVoltSquaredHour: "V²h", UnitAmpereSquaredHour: "A²h",
	UnitKilogrammPerSecond: "kg/s", UnitSiemens: "S", UnitKelvin: "K",
	UnitInverseVoltSquaredHour: "1/(V²h)", UnitInverseAmpereSquaredHour: "1/(A²h)",
	UnitInverseCubicMeter: "1/m³", UnitPercent: "%", UnitAmpereHour: "Ah",
	UnitWattHourPerCubicMeter: "Wh/m³", UnitJoulePerCubicMeter: "J/m³",
	UnitMolePercent: "Mol %", UnitGrammPerCubicMeter: "g/m³", UnitPascalSecond: "Pa s",
	UnitJoulePerKilogramm: "J/kg", UnitGramPerSquareCentimeter: "g/cm²",
	UnitAtmosphere: "atm", UnitDezibelMilliwatt: "dBm", UnitDezibelMicrovolt: "dBµV",
	UnitDezibel: "dB",
}

// LookupUnit maps a raw byte to a Unit. An unrecognised code reports
// ok=false rather than falling back to a placeholder; see DESIGN.md's
// "Unit table fail-closed decision".
func LookupUnit(code byte) (Unit, bool) {
	u := Unit(code)
	if u == 254 || u == 255 {
		return u, true
	}
	_, ok := unitSuffixes[u]
	return u, ok
}

// String renders the unit's printable suffix, or "" for Other/Count.
func (u Unit) String() string {
	return unitSuffixes[u]
}
