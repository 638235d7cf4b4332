package emissions

const rawHeader = "UID No,Engine Identification,Eng Type,B/P Ratio,Pressure Ratio,Rated Thrust (kN),Initial Test Date,Fuel Flow T/O (kg/sec),Fuel Flow C/O (kg/sec),Fuel Flow App (kg/sec),Fuel Flow Idle (kg/sec)\n"

// sampleRaw has three engines: a complete one, one with only a take-off
// reading, and one with an unparseable date and no approach reading.
const sampleRaw = rawHeader +
	"1AA001,CFM56-5B3/3,TF,5.4,32.6,142.3,2008-03-12,1.31,1.07,0.36,0.12\n" +
	"1AA002,TEST-120,TF,8.0,40.0,120,2010-05-01,1.2,,,\n" +
	"1AA003,\"JT8D-217, C\",MTF,1.73,18.5,93.4,unknown,0.99,0.81,,0.11\n"
