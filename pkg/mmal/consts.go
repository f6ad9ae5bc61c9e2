package mmal

// ParamAWBMode mirrors MMAL_PARAM_AWBMODE_T from mmal_parameters_camera.h.
type ParamAWBMode uint32

const (
	ParamAWBModeOff          ParamAWBMode = 0
	ParamAWBModeAuto         ParamAWBMode = 1
	ParamAWBModeSunlight     ParamAWBMode = 2
	ParamAWBModeCloudy       ParamAWBMode = 3
	ParamAWBModeShade        ParamAWBMode = 4
	ParamAWBModeTungsten     ParamAWBMode = 5
	ParamAWBModeFluorescent  ParamAWBMode = 6
	ParamAWBModeIncandescent ParamAWBMode = 7
	ParamAWBModeFlash        ParamAWBMode = 8
	ParamAWBModeHorizon      ParamAWBMode = 9
	ParamAWBModeGreyworld    ParamAWBMode = 10
	ParamAWBModeMax          ParamAWBMode = 0x7fffffff
)
