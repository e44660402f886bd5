package preset

// Opacity is the preset the stopped state blends with. It must stay registered.
const Opacity = "opacity"

func builtinPresets() map[string]Preset {
	return map[string]Preset{
		"default": Noop(),
		Opacity: {
			Initial: Style{"opacity": 0},
			Animate: Style{"opacity": 1},
		},
		"spin": {
			Initial: Style{"rotate": 0},
			Animate: Style{"rotate": -360},
		},

		// slides
		"slideDown":  {Initial: Style{"y": "-100%"}, Animate: Style{"y": 0}},
		"slideLeft":  {Initial: Style{"x": "100%"}, Animate: Style{"x": 0}},
		"slideRight": {Initial: Style{"x": "-100%"}, Animate: Style{"x": 0}},
		"slideUp":    {Initial: Style{"y": "100%"}, Animate: Style{"y": 0}},

		"staggeredIn":  {Initial: Style{"x": "-50%"}, Animate: Style{"x": 0}},
		"staggeredOut": {Initial: Style{"x": "-50%"}, Animate: Style{"x": 0}},

		// fades
		"fadeIn":    {Initial: Style{"opacity": 0}, Animate: Style{"opacity": 1}},
		"fadeOut":   {Initial: Style{"opacity": 1}, Animate: Style{"opacity": 0}},
		"fadeUp":    {Initial: Style{"opacity": 0, "y": 30}, Animate: Style{"opacity": 1, "y": 0}},
		"fadeDown":  {Initial: Style{"opacity": 0, "y": -30}, Animate: Style{"opacity": 1, "y": 0}},
		"fadeLeft":  {Initial: Style{"opacity": 0, "x": -30}, Animate: Style{"opacity": 1, "x": 0}},
		"fadeRight": {Initial: Style{"opacity": 0, "x": 30}, Animate: Style{"opacity": 1, "x": 0}},

		// zoom and scale
		"scaleZoomIn":     {Initial: Style{"scale": 0.8}, Animate: Style{"scale": 1}},
		"scaleZoomOut":    {Initial: Style{"scale": 1.2}, Animate: Style{"scale": 1}},
		"scaleGrowShrink": {Initial: Style{"scale": 1}, Animate: Style{"scale": track(1, 1.2, 1)}},

		// rotations
		"rotateIn":        {Initial: Style{"rotate": -90}, Animate: Style{"rotate": 0}},
		"rotateOut":       {Initial: Style{"rotate": 0}, Animate: Style{"rotate": 90}},
		"rotateFlipX":     {Initial: Style{"rotateX": -180}, Animate: Style{"rotateX": 0}},
		"rotateFlipY":     {Initial: Style{"rotateY": -180}, Animate: Style{"rotateY": 0}},
		"rotateSwing":     {Initial: Style{"rotate": 0}, Animate: Style{"rotate": track(15, -10, 5, -5, 0)}},
		"rotateClockwise": {Initial: Style{"rotate": -45}, Animate: Style{"rotate": 0}},
		"rotateRoll":      {Initial: Style{"rotateZ": -120}, Animate: Style{"rotateZ": 0}},
		"rotating360":     {Initial: Style{"rotate": 0}, Animate: Style{"rotate": 360}},

		// bounces
		"bounceY": {Initial: Style{"y": 0}, Animate: Style{"y": track(0, -20, 10, -10, 5, 0)}},
		"bounceX": {Initial: Style{"x": 0}, Animate: Style{"x": track(-10, 10, -10, 10, -5, 5, 0)}},
		"rotateBounce": {
			Initial: Style{"rotate": -90, "y": 0},
			Animate: Style{"rotate": track(0, 15, -10, 5, 0), "y": track(0, -20, 10, -10, 0)},
		},
		"elasticBounce": {Initial: Style{"y": 0}, Animate: Style{"y": track(0, -30, 20, -15, 5, 0)}},
		"bounceInOut":   {Initial: Style{"y": 0}, Animate: Style{"y": track(0, -40, 20, -10, 0)}},

		"burakHeartbeat":  {Initial: Style{"scale": 1}, Animate: Style{"scale": track(1, 1.2, 1)}},
		"burakRubberBand": {Initial: Style{"scale": 1}, Animate: Style{"scale": track(1, 1.25, 0.75, 1.15, 0.95, 1)}},
		"burakWobble": {
			Initial: Style{"x": 0, "rotate": 0},
			Animate: Style{"x": track(0, -20, 15, -10, 5, 0), "rotate": track(0, -5, 3, -3, 0)},
		},
		"burakPulse": {Initial: Style{"scale": 1}, Animate: Style{"scale": track(1, 1.05, 1)}},

		"skewX": {Initial: Style{"skewX": 30}, Animate: Style{"skewX": 0}},

		"textShimmer":     {Initial: Style{"opacity": 0}, Animate: Style{"opacity": track(0, 1, 0, 0, 1)}},
		"swingHorizontal": {Initial: Style{"x": 0}, Animate: Style{"x": track(0, -10, 10, -5, 5, 0)}},
		"flash":           {Initial: Style{"opacity": 1}, Animate: Style{"opacity": track(1, 0, 1)}},
		"hoverEffect":     {Initial: Style{"scale": 1}, Animate: Style{"scale": 1.1}},
		"wave":            {Initial: Style{"rotate": 0}, Animate: Style{"rotate": track(0, 15, -15, 15, -15, 0)}},

		// standalone combos, no second preset needed
		"funChickenDance": {
			Initial: Style{"rotate": 0, "x": 0},
			Animate: Style{"rotate": track(0, 10, -10, 10, -10, 0), "x": track(0, 5, -5, 5, -5, 0)},
		},
		"funJellyFish": {
			Initial: Style{"scale": 1, "y": 0},
			Animate: Style{"scale": track(1, 1.2, 0.8, 1.1, 0.9, 1), "y": track(0, -10, 10, -5, 5, 0)},
		},
		"funRocketBoost": {
			Initial: Style{"y": 50, "opacity": 0},
			Animate: Style{"y": track(50, 0, -10, 0), "opacity": 1},
		},
		"funDizzyLizard": {
			Initial: Style{"rotate": 0, "scale": 1},
			Animate: Style{"rotate": track(0, 360, 720, 1080, 1440), "scale": track(1, 1.2, 0.8, 1)},
		},
		"funBlobMorph": {
			Initial: Style{"scale": 1, "borderRadius": "0%"},
			Animate: Style{"scale": track(1, 1.2, 0.8, 1), "borderRadius": track("0%", "50%", "25%", "50%", "0%")},
		},
		"funMoonWalk": {
			Initial: Style{"x": 0, "opacity": 1},
			Animate: Style{"x": track(0, -10, 20, -30, 40, 0), "opacity": track(1, 0.8, 0.6, 0.4, 0.2, 1)},
		},
		"funPeekABoo": {
			Initial: Style{"scale": 1, "opacity": 0},
			Animate: Style{"scale": track(1, 1.5, 0.5, 1), "opacity": track(0, 1, 0, 1)},
		},
		"funSnailTrail": {
			Initial: Style{"x": "-100%", "opacity": 0},
			Animate: Style{"x": track("-100%", "-50%", "-25%", "-10%", "0%"), "opacity": track(0, 0.3, 0.5, 0.8, 1)},
		},
		"funPopcornPop": {
			Initial: Style{"y": 0, "scale": 1},
			Animate: Style{"y": track(0, -20, 10, -5, 2, 0), "scale": track(1, 1.1, 1.2, 0.9, 1.05, 1)},
		},
		"funYoYoSpin": {
			Initial: Style{"rotate": 0, "y": 0},
			Animate: Style{"rotate": track(0, 360, -360, 360), "y": track(0, -10, 20, -10, 0)},
		},
		"funWarpDrive": {
			Initial: Style{"scale": 0.5, "opacity": 0},
			Animate: Style{"scale": track(0.5, 1.5, 0.7, 1), "opacity": track(0, 0.5, 1, 1)},
		},
		"funSpringFling": {Initial: Style{"y": 0}, Animate: Style{"y": track(0, -50, 25, -12, 6, 0)}},
		"funTwinkleToes": {
			Initial: Style{"scale": 1, "opacity": 0},
			Animate: Style{"scale": track(1, 1.2, 0.8, 1), "opacity": track(0, 0.5, 0.8, 1)},
		},
		"funGhostFloat": {
			Initial: Style{"y": 20, "opacity": 0},
			Animate: Style{"y": track(20, 10, 5, 0, -5, -10, 0), "opacity": track(0, 0.3, 0.6, 0.9, 1)},
		},

		// filters
		"filterBlurIn":           {Initial: Style{"filter": "blur(10px)"}, Animate: Style{"filter": "blur(0px)"}},
		"filterBlurOut":          {Initial: Style{"filter": "blur(0px)"}, Animate: Style{"filter": "blur(10px)"}},
		"filterBrightnessFade":   {Initial: Style{"filter": "brightness(0.5)"}, Animate: Style{"filter": "brightness(1)"}},
		"filterContrastShift":    {Initial: Style{"filter": "contrast(50%)"}, Animate: Style{"filter": "contrast(100%)"}},
		"filterGrayscaleFade":    {Initial: Style{"filter": "grayscale(100%)"}, Animate: Style{"filter": "grayscale(0%)"}},
		"filterHueRotate":        {Initial: Style{"filter": "hue-rotate(0deg)"}, Animate: Style{"filter": "hue-rotate(360deg)"}},
		"filterInvertColors":     {Initial: Style{"filter": "invert(0%)"}, Animate: Style{"filter": "invert(100%)"}},
		"filterSaturateIncrease": {Initial: Style{"filter": "saturate(50%)"}, Animate: Style{"filter": "saturate(200%)"}},
		"filterSepiaTone":        {Initial: Style{"filter": "sepia(0%)"}, Animate: Style{"filter": "sepia(100%)"}},

		// 3d translations
		"translate3dIn": {
			Initial: Style{"transform": "translate3d(-100px, -100px, -100px)"},
			Animate: Style{"transform": "translate3d(0px, 0px, 0px)"},
		},
		"translate3dOut": {
			Initial: Style{"transform": "translate3d(0px, 0px, 0px)"},
			Animate: Style{"transform": "translate3d(100px, 100px, 100px)"},
		},
		"translate3dRotate": {
			Initial: Style{"transform": "translate3d(-50px, -50px, -50px) rotate(0deg)"},
			Animate: Style{"transform": "translate3d(0px, 0px, 0px) rotate(360deg)"},
		},
		"translate3dZoom": {
			Initial: Style{"transform": "translate3d(-50px, 0px, -100px) scale(0.5)"},
			Animate: Style{"transform": "translate3d(0px, 0px, 0px) scale(1)"},
		},
		"translate3dBounce": {
			Initial: Style{"transform": "translate3d(0px, 0px, 0px)"},
			Animate: Style{"transform": track(
				"translate3d(0px, 0px, 0px)",
				"translate3d(0px, -30px, 0px)",
				"translate3d(0px, 15px, 0px)",
				"translate3d(0px, 0px, 0px)",
			)},
		},
		"translate3dWave": {
			Initial: Style{"transform": "translate3d(0px, 0px, 0px)"},
			Animate: Style{"transform": track(
				"translate3d(0px, 0px, 0px)",
				"translate3d(10px, 0px, 10px)",
				"translate3d(-10px, 0px, -10px)",
				"translate3d(0px, 0px, 0px)",
			)},
		},
		"translate3dZigZag": {
			Initial: Style{"transform": "translate3d(0px, 0px, 0px)"},
			Animate: Style{"transform": track(
				"translate3d(0px, 0px, 0px)",
				"translate3d(20px, -10px, 10px)",
				"translate3d(-20px, 10px, -10px)",
				"translate3d(0px, 0px, 0px)",
			)},
		},

		// roams from the top start to the bottom end and fades out
		"koopRoam": {
			Initial: Style{"x": 0, "y": 0, "scale": 1, "opacity": 1},
			Animate: Style{
				"x":       track(0, 910, 960, 1220, 1496),
				"y":       track(0, 550, 420, 580, 540),
				"opacity": track(1, 0.85, 0.75, 0),
				"transition": map[string]any{
					"duration": 4,
					"times":    track(0, 0.25, 0.5, 0.75, 1),
				},
			},
		},
	}
}
