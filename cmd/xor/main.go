package main

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/xornet-ml/xornet/internal/net"
)

func main() {
	fmt.Println("=== XOR Training Example ===")

	// 2 inputs -> 4 hidden -> 1 output. The XOR function cannot be solved
	// by a single-layer perceptron but can be solved by a multi-layer
	// perceptron with a hidden layer.
	cfg := net.Config{
		InputDim:       2,
		HiddenDim:      4,
		OutputDim:      1,
		LearningRate:   0.1,
		Iterations:     20000,
		ReportInterval: 1000,
	}

	fmt.Printf("Network architecture: %d-%d-%d\n", cfg.InputDim, cfg.HiddenDim, cfg.OutputDim)
	fmt.Println("Activation function: Sigmoid (hidden and output)")
	fmt.Println("Loss function: MSE")
	fmt.Printf("Optimizer: SGD with learning rate %v\n", cfg.LearningRate)

	network, err := net.New(cfg, net.NewUniformInitializer(42))
	if err != nil {
		fmt.Printf("Error creating network: %v\n", err)
		os.Exit(1)
	}

	// XOR training data, full batch
	trainX := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	trainY := mat.NewDense(4, 1, []float64{0, 1, 1, 0})

	result, err := network.Fit(trainX, trainY, net.Logger{})
	if err != nil {
		fmt.Printf("Error training network: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nFinal loss: %.6f\n", result.Loss)

	// Test the network
	fmt.Println("\nTesting trained network:")
	for i := 0; i < 4; i++ {
		fmt.Printf("Input: [%.0f %.0f], Predicted: %.4f, Target: %.0f\n",
			trainX.At(i, 0), trainX.At(i, 1), result.YHat.At(i, 0), trainY.At(i, 0))
	}

	// Save the trained network
	fmt.Println("\nSaving network to disk...")
	if err := network.Save("xor_network.bin"); err != nil {
		fmt.Printf("Error saving network: %v\n", err)
		return
	}
	fmt.Println("Network saved successfully!")

	// Load the network back
	fmt.Println("Loading network from disk...")
	loadedNetwork, err := net.Load("xor_network.bin")
	if err != nil {
		fmt.Printf("Error loading network: %v\n", err)
		return
	}
	fmt.Println("Network loaded successfully!")

	// Verify loaded network produces same predictions
	fmt.Println("\nVerifying loaded network:")
	originalPred := network.Predict(trainX)
	loadedPred := loadedNetwork.Predict(trainX)
	allMatch := true
	for i := 0; i < 4; i++ {
		match := "OK"
		if math.Abs(originalPred.At(i, 0)-loadedPred.At(i, 0)) > 1e-6 {
			match = "MISMATCH"
			allMatch = false
		}
		fmt.Printf("Input: [%.0f %.0f], Original: %.4f, Loaded: %.4f [%s]\n",
			trainX.At(i, 0), trainX.At(i, 1), originalPred.At(i, 0), loadedPred.At(i, 0), match)
	}

	if allMatch {
		fmt.Println("\nSUCCESS: All predictions match between original and loaded network!")
	} else {
		fmt.Println("\nFAILURE: Predictions differ between original and loaded network!")
	}
}
